package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

// defaultUserID is the seeded demo account; there is no login flow.
const defaultUserID = 1

type GarageHandler struct {
	service ports.GarageService
	log     *zap.Logger
}

func NewGarageHandler(service ports.GarageService, log *zap.Logger) *GarageHandler {
	return &GarageHandler{
		service: service,
		log:     log,
	}
}

func (h *GarageHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.service.GetUser(c.Context(), defaultUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch user"})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	return c.JSON(user)
}

func (h *GarageHandler) ListVehicles(c *fiber.Ctx) error {
	vehicles, err := h.service.GetVehicles(c.Context(), defaultUserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch vehicles"})
	}
	return c.JSON(vehicles)
}

func (h *GarageHandler) GetVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	vehicle, err := h.service.GetVehicle(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch vehicle"})
	}
	if vehicle == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	return c.JSON(vehicle)
}

func (h *GarageHandler) ListDrivers(c *fiber.Ctx) error {
	vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	drivers, err := h.service.GetDrivers(c.Context(), vehicleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch drivers"})
	}
	return c.JSON(drivers)
}

// GetActiveDriver answers null with a 200 when the vehicle has no active
// driver; absence is not an error here.
func (h *GarageHandler) GetActiveDriver(c *fiber.Ctx) error {
	vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	driver, err := h.service.GetActiveDriver(c.Context(), vehicleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch active driver"})
	}
	return c.JSON(driver)
}

func (h *GarageHandler) CreateDriver(c *fiber.Ctx) error {
	var req domain.NewDriver
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid driver data"})
	}
	if req.VehicleID <= 0 || req.Name == "" || req.Relationship == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid driver data"})
	}

	driver, err := h.service.AddDriver(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create driver"})
	}
	return c.JSON(driver)
}

type updateDriverStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

func (h *GarageHandler) UpdateDriverStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid driver id"})
	}

	var req updateDriverStatusRequest
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "isActive is required"})
	}

	driver, err := h.service.SetDriverStatus(c.Context(), id, *req.IsActive)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update driver status"})
	}
	if driver == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Driver not found"})
	}
	return c.JSON(driver)
}
