package middleware

import (
	"errors"
	"log"

	"skill-atlas/internal/pkg/response"
	"skill-atlas/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ErrorMiddleware turns errors escaping a handler into the envelope and
// recovers panics. Usecase sentinels get their canonical status here, so
// handlers only map errors when they need a non-default status.
type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if m != nil && m.logger != nil {
					m.logger.Printf("panic recovered | path=%s panic=%v", c.OriginalURL(), r)
				}
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		return response.Error(c, status, msg, nil)
	}
}

func normalizeError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return fiber.StatusBadRequest, "invalid input"
	case errors.Is(err, usecase.ErrReservedProfile):
		return fiber.StatusForbidden, "the default profile cannot be renamed or deleted"
	case errors.Is(err, usecase.ErrProfileNotFound):
		return fiber.StatusNotFound, "profile not found"
	case errors.Is(err, usecase.ErrSkillNotFound):
		return fiber.StatusNotFound, "skill not found"
	case errors.Is(err, usecase.ErrPathNotFound):
		return fiber.StatusNotFound, "path not found"
	case errors.Is(err, usecase.ErrProfileExists):
		return fiber.StatusConflict, "profile already exists"
	case errors.Is(err, usecase.ErrPathExists):
		return fiber.StatusConflict, "path already exists"
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		return status, fiberErr.Message
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
