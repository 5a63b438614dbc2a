package handler

import (
	"skill-atlas/internal/pkg/response"
	"skill-atlas/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type createProfileRequest struct {
	Name string `json:"name"`
}

type renameProfileRequest struct {
	Name string `json:"name"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/:name", h.Rename)
	r.Delete("/:name", h.Delete)
	r.Get("/:name/document", h.Export)
	r.Put("/:name/document", h.Import)
}

func (h *ProfileHandler) List(c fiber.Ctx) error {
	names, err := h.uc.ListProfiles(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, names)
}

func (h *ProfileHandler) Create(c fiber.Ctx) error {
	var req createProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := h.uc.CreateProfile(c.Context(), req.Name); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Profile created successfully", req.Name)
}

func (h *ProfileHandler) Rename(c fiber.Ctx) error {
	var req renameProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := h.uc.RenameProfile(c.Context(), c.Params("name"), req.Name); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Profile renamed successfully", req.Name)
}

func (h *ProfileHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.DeleteProfile(c.Context(), c.Params("name")); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Profile deleted successfully", nil)
}

func (h *ProfileHandler) Export(c fiber.Ctx) error {
	doc, warn, err := h.uc.ExportDocument(c.Context(), c.Params("name"))
	if err != nil {
		return err
	}
	if warn {
		return response.SuccessWithWarning(c, fiber.StatusOK, response.MessageOK, doc, response.WarningDocumentUnparsable)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, doc)
}

func (h *ProfileHandler) Import(c fiber.Ctx) error {
	var req usecase.ImportInput
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := h.uc.ImportDocument(c.Context(), c.Params("name"), req); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Document imported successfully", nil)
}
