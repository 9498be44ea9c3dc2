package domain

type CarParkStatus string

const (
	CarParkStatusAvailable CarParkStatus = "available"
	CarParkStatusLimited   CarParkStatus = "limited"
	CarParkStatusFull      CarParkStatus = "full"
)

// CarPark describes a bookable car park. Status is derived from occupancy:
// full when no spaces remain, limited when fewer than 20% of spaces remain,
// available otherwise. UpdateSpaces on the store is the only path that keeps
// Status consistent with AvailableSpaces.
type CarPark struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Location        string        `json:"location"`
	Latitude        string        `json:"latitude"`
	Longitude       string        `json:"longitude"`
	TotalSpaces     int           `json:"totalSpaces"`
	AvailableSpaces int           `json:"availableSpaces"`
	HourlyRate      string        `json:"hourlyRate"`
	Status          CarParkStatus `json:"status"`
}

type NewCarPark struct {
	Name            string        `json:"name"`
	Location        string        `json:"location"`
	Latitude        string        `json:"latitude"`
	Longitude       string        `json:"longitude"`
	TotalSpaces     int           `json:"totalSpaces"`
	AvailableSpaces int           `json:"availableSpaces"`
	HourlyRate      string        `json:"hourlyRate"`
	Status          CarParkStatus `json:"status"`
}

// DeriveCarParkStatus computes the occupancy status for the given counts.
func DeriveCarParkStatus(availableSpaces, totalSpaces int) CarParkStatus {
	switch {
	case availableSpaces == 0:
		return CarParkStatusFull
	case float64(availableSpaces) < float64(totalSpaces)*0.2:
		return CarParkStatusLimited
	default:
		return CarParkStatusAvailable
	}
}
