package handler

import (
	"skill-atlas/internal/pkg/response"
	"skill-atlas/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PathHandler struct {
	uc usecase.PathUsecase
}

type addPathRequest struct {
	// Parent + Segment adds one level below an existing node; Path adds
	// a full dot-delimited path by hand. The two forms are exclusive.
	Parent  string `json:"parent"`
	Segment string `json:"segment"`
	Path    string `json:"path"`
}

type renamePathRequest struct {
	Old       string `json:"old"`
	New       string `json:"new"`
	Recursive bool   `json:"recursive"`
}

type deletePathRequest struct {
	Path string `json:"path"`
}

type renamePathResponse struct {
	Updated int `json:"updated"`
}

func NewPathHandler(uc usecase.PathUsecase) *PathHandler {
	return &PathHandler{uc: uc}
}

func (h *PathHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Add)
	r.Post("/rename", h.Rename)
	r.Post("/delete", h.Delete)
}

func (h *PathHandler) List(c fiber.Ctx) error {
	listing, err := h.uc.ListPaths(c.Context(), c.Params("name"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, listing)
}

func (h *PathHandler) Add(c fiber.Ctx) error {
	var req addPathRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	var (
		added string
		err   error
	)
	if req.Path != "" {
		added, err = h.uc.AddManualPath(c.Context(), c.Params("name"), req.Path)
	} else {
		added, err = h.uc.AddChildPath(c.Context(), c.Params("name"), req.Parent, req.Segment)
	}
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Path added successfully", added)
}

func (h *PathHandler) Rename(c fiber.Ctx) error {
	var req renamePathRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}

	updated, err := h.uc.RenamePath(c.Context(), c.Params("name"), req.Old, req.New, req.Recursive)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Path renamed successfully", renamePathResponse{Updated: updated})
}

func (h *PathHandler) Delete(c fiber.Ctx) error {
	var req deletePathRequest
	if err := c.Bind().Body(&req); err != nil {
		return response.Error(c, fiber.StatusBadRequest, response.MessageBadRequest, nil)
	}
	if err := h.uc.DeletePath(c.Context(), c.Params("name"), req.Path); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, "Path removed successfully", nil)
}
