package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type ServicingHandler struct {
	service ports.ServicingService
	log     *zap.Logger
}

func NewServicingHandler(service ports.ServicingService, log *zap.Logger) *ServicingHandler {
	return &ServicingHandler{
		service: service,
		log:     log,
	}
}

func (h *ServicingHandler) ListRecords(c *fiber.Ctx) error {
	vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	records, err := h.service.GetRecords(c.Context(), vehicleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch service records"})
	}
	return c.JSON(records)
}

// GetNextServiceDue answers null with a 200 when no record carries a next
// due date.
func (h *ServicingHandler) GetNextServiceDue(c *fiber.Ctx) error {
	vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	record, err := h.service.GetNextServiceDue(c.Context(), vehicleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch next service due"})
	}
	return c.JSON(record)
}

func (h *ServicingHandler) CreateRecord(c *fiber.Ctx) error {
	var req domain.NewServiceRecord
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service record data"})
	}
	if req.VehicleID <= 0 || req.ServiceType == "" || req.Provider == "" || req.ServiceDate.IsZero() || req.Cost == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid service record data"})
	}

	record, err := h.service.AddRecord(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create service record"})
	}
	return c.JSON(record)
}
