package handler

import (
	"skill-atlas/internal/pkg/response"
	"skill-atlas/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type skillRequest struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Proficiency int    `json:"proficiency"`
	Priority    int    `json:"priority"`
	Memo        string `json:"memo"`
}

type replaceSkillsRequest struct {
	Skills []replaceSkillRow `json:"skills"`
}

type replaceSkillRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Path        string `json:"path"`
	Proficiency int    `json:"proficiency"`
	Priority    int    `json:"priority"`
	Memo        string `json:"memo"`
}

type moveSkillRequest struct {
	Direction string `json:"direction"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/", h.Replace)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
	r.Post("/:id/move", h.Move)
}

func (h *SkillHandler) List(c fiber.Ctx) error {
	items, warn, err := h.uc.ListSkills(c.Context(), c.Params("name"))
	if err != nil {
		return err
	}
	if warn {
		return response.SuccessWithWarning(c, fiber.StatusOK, response.MessageOK, items, response.WarningDocumentUnparsable)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	created, err := h.uc.AddSkill(c.Context(), c.Params("name"), usecase.AddSkillInput{
		Name:        req.Name,
		Path:        req.Path,
		Proficiency: req.Proficiency,
		Priority:    req.Priority,
		Memo:        req.Memo,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Skill created successfully", created)
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), c.Params("name"), id, usecase.UpdateSkillInput{
		Name:        req.Name,
		Path:        req.Path,
		Proficiency: req.Proficiency,
		Priority:    req.Priority,
		Memo:        req.Memo,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Skill updated successfully", updated)
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := h.uc.DeleteSkill(c.Context(), c.Params("name"), id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Skill deleted successfully", nil)
}

func (h *SkillHandler) Move(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var req moveSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := h.uc.MoveSkill(c.Context(), c.Params("name"), id, req.Direction); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Skill moved successfully", nil)
}

func (h *SkillHandler) Replace(c fiber.Ctx) error {
	var req replaceSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	rows := make([]usecase.ReplaceSkillRow, 0, len(req.Skills))
	for _, r := range req.Skills {
		row := usecase.ReplaceSkillRow{
			Name:        r.Name,
			Path:        r.Path,
			Proficiency: r.Proficiency,
			Priority:    r.Priority,
			Memo:        r.Memo,
		}
		if r.ID != "" {
			id, err := uuid.Parse(r.ID)
			if err != nil {
				return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
			}
			row.ID = id
		}
		rows = append(rows, row)
	}

	if err := h.uc.ReplaceSkills(c.Context(), c.Params("name"), rows); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Skills replaced successfully", nil)
}
