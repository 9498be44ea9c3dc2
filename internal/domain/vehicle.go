package domain

import (
	"time"
)

type Vehicle struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	Registration string    `json:"registration"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Color        string    `json:"color"`
	CreatedAt    time.Time `json:"createdAt"`
}

type NewVehicle struct {
	UserID       int    `json:"userId"`
	Registration string `json:"registration"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Color        string `json:"color"`
}
