package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type ParkingHandler struct {
	service ports.ParkingService
	log     *zap.Logger
}

func NewParkingHandler(service ports.ParkingService, log *zap.Logger) *ParkingHandler {
	return &ParkingHandler{
		service: service,
		log:     log,
	}
}

func (h *ParkingHandler) ListCarParks(c *fiber.Ctx) error {
	parks, err := h.service.ListCarParks(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch car parks"})
	}
	return c.JSON(parks)
}

func (h *ParkingHandler) ListNearbyCarParks(c *fiber.Ctx) error {
	lat, _ := strconv.ParseFloat(c.Query("lat"), 64)
	lng, _ := strconv.ParseFloat(c.Query("lng"), 64)
	radius, _ := strconv.ParseFloat(c.Query("radius", "5"), 64)

	parks, err := h.service.ListNearbyCarParks(c.Context(), lat, lng, radius)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch nearby car parks"})
	}
	return c.JSON(parks)
}

func (h *ParkingHandler) ListSessions(c *fiber.Ctx) error {
	vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	sessions, err := h.service.GetSessions(c.Context(), vehicleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch parking sessions"})
	}
	return c.JSON(sessions)
}

// GetActiveSession answers null with a 200 when nothing is active.
func (h *ParkingHandler) GetActiveSession(c *fiber.Ctx) error {
	vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	session, err := h.service.GetActiveSession(c.Context(), vehicleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch active parking session"})
	}
	return c.JSON(session)
}

func (h *ParkingHandler) StartSession(c *fiber.Ctx) error {
	var req domain.NewParkingSession
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid parking session data"})
	}
	if req.VehicleID <= 0 || req.DriverID <= 0 || req.Location == "" || req.CarParkNumber == "" || req.HourlyRate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid parking session data"})
	}

	session, err := h.service.StartSession(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrActiveSessionExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create parking session"})
	}
	return c.JSON(session)
}

func (h *ParkingHandler) UpdateSession(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	var patch domain.ParkingSessionPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid parking session data"})
	}

	session, err := h.service.UpdateSession(c.Context(), id, patch)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update parking session"})
	}
	if session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Parking session not found"})
	}
	return c.JSON(session)
}
