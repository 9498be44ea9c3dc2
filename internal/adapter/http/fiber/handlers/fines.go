package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/ports"
)

type FineHandler struct {
	service ports.FineService
	log     *zap.Logger
}

func NewFineHandler(service ports.FineService, log *zap.Logger) *FineHandler {
	return &FineHandler{
		service: service,
		log:     log,
	}
}

func (h *FineHandler) ListFines(c *fiber.Ctx) error {
	vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	fines, err := h.service.GetFines(c.Context(), vehicleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch fines"})
	}
	return c.JSON(fines)
}

func (h *FineHandler) ListOutstandingFines(c *fiber.Ctx) error {
	vehicleID, err := strconv.Atoi(c.Params("vehicleId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle id"})
	}

	fines, err := h.service.GetOutstandingFines(c.Context(), vehicleID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch outstanding fines"})
	}
	return c.JSON(fines)
}

type payFineRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// Pay runs the simulated payment: the fine always transitions to paid and
// the payment method is echoed back without being persisted.
func (h *FineHandler) Pay(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fine id"})
	}

	var req payFineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment data"})
	}

	fine, err := h.service.Pay(c.Context(), id, req.PaymentMethod)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process payment"})
	}
	if fine == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fine not found"})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"fine":          fine,
		"paymentMethod": req.PaymentMethod,
	})
}

type appealFineRequest struct {
	Reason string `json:"reason"`
}

// Appeal marks the fine as appealed; the reason is echoed back only.
func (h *FineHandler) Appeal(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid fine id"})
	}

	var req appealFineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appeal data"})
	}

	fine, err := h.service.Appeal(c.Context(), id, req.Reason)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit appeal"})
	}
	if fine == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Fine not found"})
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"fine":         fine,
		"appealReason": req.Reason,
	})
}
