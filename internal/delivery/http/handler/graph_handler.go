package handler

import (
	"skill-atlas/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GraphHandler struct {
	uc usecase.GraphUsecase
}

func NewGraphHandler(uc usecase.GraphUsecase) *GraphHandler {
	return &GraphHandler{uc: uc}
}

func (h *GraphHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Render)
}

// Render serves the DOT description as plain Graphviz text, not the
// JSON envelope: the UI feeds it straight into a renderer.
func (h *GraphHandler) Render(c fiber.Ctx) error {
	showSkills := c.Query("skills", "true") != "false"

	dot, err := h.uc.Render(c.Context(), c.Params("name"), showSkills)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/vnd.graphviz; charset=utf-8")
	return c.SendString(dot)
}
