package v1

import (
	"skill-atlas/internal/delivery/http/handler"
	"skill-atlas/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the usecases the v1 surface is built from.
type Deps struct {
	Profiles usecase.ProfileUsecase
	Skills   usecase.SkillUsecase
	Paths    usecase.PathUsecase
	Urgency  usecase.UrgencyUsecase
	Graph    usecase.GraphUsecase
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	profiles := r.Group("/profiles")
	handler.NewProfileHandler(d.Profiles).RegisterRoutes(profiles)

	perProfile := profiles.Group("/:name")
	handler.NewSkillHandler(d.Skills).RegisterRoutes(perProfile.Group("/skills"))
	handler.NewPathHandler(d.Paths).RegisterRoutes(perProfile.Group("/paths"))
	handler.NewUrgencyHandler(d.Urgency).RegisterRoutes(perProfile.Group("/urgency"))
	handler.NewGraphHandler(d.Graph).RegisterRoutes(perProfile.Group("/graph"))
}
