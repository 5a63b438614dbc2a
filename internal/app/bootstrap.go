package app

import (
	"fmt"
	"log"
	"strings"

	"skill-atlas/internal/config"
	"skill-atlas/internal/delivery/http/middleware"
	"skill-atlas/internal/delivery/http/routes"
	v1 "skill-atlas/internal/delivery/http/routes/v1"
	"skill-atlas/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, logger *log.Logger) (*App, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	registerGlobalMiddleware(f, logger)
	registerRoutes(f, c)

	go c.Hub.Run()

	return &App{Fiber: f, Container: c}, nil
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	app, err := New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return app, app.Container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	registry := routes.NewRegistry(v1.Deps{
		Profiles: c.Profiles,
		Skills:   c.Skills,
		Paths:    c.Paths,
		Urgency:  c.Urgency,
		Graph:    c.Graph,
	})
	registry.Register(app)

	app.Get("/ws", ws.NewHandler(c.Hub, c.Logger).HandleProfileEventsWS)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
