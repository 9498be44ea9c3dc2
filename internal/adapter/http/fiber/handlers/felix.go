package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type FelixHandler struct {
	service ports.AssistantService
	log     *zap.Logger
}

func NewFelixHandler(service ports.AssistantService, log *zap.Logger) *FelixHandler {
	return &FelixHandler{
		service: service,
		log:     log,
	}
}

type chatRequest struct {
	Message      string               `json:"message"`
	Conversation []domain.ChatMessage `json:"conversation"`
}

func (h *FelixHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid chat data"})
	}

	reply, err := h.service.Chat(c.Context(), req.Message, req.Conversation)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process AI request"})
	}
	return c.JSON(reply)
}
