package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every API route on the given router, normally the
// app's /api group. Kept in one place so main and the handler tests build
// identical route tables.
func RegisterRoutes(api fiber.Router, garage *GarageHandler, parking *ParkingHandler, servicing *ServicingHandler, fines *FineHandler, felix *FelixHandler) {
	api.Get("/user", garage.GetUser)

	api.Get("/vehicles", garage.ListVehicles)
	api.Get("/vehicles/:id", garage.GetVehicle)

	api.Get("/vehicles/:vehicleId/drivers", garage.ListDrivers)
	api.Get("/vehicles/:vehicleId/active-driver", garage.GetActiveDriver)
	api.Post("/drivers", garage.CreateDriver)
	api.Patch("/drivers/:id/status", garage.UpdateDriverStatus)

	api.Get("/car-parks", parking.ListCarParks)
	api.Get("/car-parks/nearby", parking.ListNearbyCarParks)

	api.Get("/vehicles/:vehicleId/parking-sessions", parking.ListSessions)
	api.Get("/vehicles/:vehicleId/active-parking", parking.GetActiveSession)
	api.Post("/parking-sessions", parking.StartSession)
	api.Patch("/parking-sessions/:id", parking.UpdateSession)

	api.Get("/vehicles/:vehicleId/service-records", servicing.ListRecords)
	api.Get("/vehicles/:vehicleId/next-service", servicing.GetNextServiceDue)
	api.Post("/service-records", servicing.CreateRecord)

	api.Get("/vehicles/:vehicleId/fines", fines.ListFines)
	api.Get("/vehicles/:vehicleId/outstanding-fines", fines.ListOutstandingFines)
	api.Patch("/fines/:id/pay", fines.Pay)
	api.Patch("/fines/:id/appeal", fines.Appeal)

	api.Post("/felix/chat", felix.Chat)
}
