package app

import (
	"log"

	"skill-atlas/internal/config"
	"skill-atlas/internal/repository"
	"skill-atlas/internal/usecase"
	"skill-atlas/internal/ws"
)

// Container wires the storage, usecases and the ws hub together.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Repo      repository.ProfileRepository
	Documents *usecase.DocumentService
	Hub       *ws.Hub

	Profiles usecase.ProfileUsecase
	Skills   usecase.SkillUsecase
	Paths    usecase.PathUsecase
	Urgency  usecase.UrgencyUsecase
	Graph    usecase.GraphUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	repo, err := repository.NewFileProfileRepository(cfg.Storage.DataDir, logger)
	if err != nil {
		return nil, err
	}

	docs := usecase.NewDocumentService(repo, usecase.NewMemoryDocumentCache(), logger)
	hub := ws.NewHub(logger)
	docs.SetMutationListener(func(profile string, revision uint64) {
		ws.NotifyProfileUpdated(hub, profile, revision)
	})

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Repo:      repo,
		Documents: docs,
		Hub:       hub,
		Profiles:  usecase.NewProfileUsecase(repo, docs),
		Skills:    usecase.NewSkillUsecase(docs),
		Paths:     usecase.NewPathUsecase(docs),
		Urgency:   usecase.NewUrgencyUsecase(docs),
		Graph:     usecase.NewGraphUsecase(docs, cfg.App.AppName),
	}, nil
}

func (c *Container) Close() error {
	return nil
}
