package handler

import (
	"strconv"

	"skill-atlas/internal/pkg/response"
	"skill-atlas/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UrgencyHandler struct {
	uc usecase.UrgencyUsecase
}

func NewUrgencyHandler(uc usecase.UrgencyUsecase) *UrgencyHandler {
	return &UrgencyHandler{uc: uc}
}

func (h *UrgencyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Ranking)
}

// Ranking serves the table view by default; ?top=N switches to the
// score-only most-urgent slice.
func (h *UrgencyHandler) Ranking(c fiber.Ctx) error {
	if raw := c.Query("top"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
		}
		items, err := h.uc.Top(c.Context(), c.Params("name"), n)
		if err != nil {
			return err
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, items)
	}

	items, warn, err := h.uc.RankedTable(c.Context(), c.Params("name"))
	if err != nil {
		return err
	}
	if warn {
		return response.SuccessWithWarning(c, fiber.StatusOK, response.MessageOK, items, response.WarningDocumentUnparsable)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}
