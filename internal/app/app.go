// Package app wires the database, repositories and services shared by the
// server and the command-line client.
package app

import (
	"github.com/vytor/leitnerflash/internal/config"
	"github.com/vytor/leitnerflash/internal/db"
	"github.com/vytor/leitnerflash/internal/jobs"
	"github.com/vytor/leitnerflash/internal/repository/sqlite"
	"github.com/vytor/leitnerflash/internal/services"
	"github.com/vytor/leitnerflash/internal/worker"
)

type App struct {
	DB         *db.DB
	ImportPool *worker.Pool

	ProfileService  services.ProfileService
	CardService     services.CardService
	PracticeService services.PracticeService
	ImportService   services.ImportService
}

// New opens the database and builds the services. The import pool is
// created but not started.
func New(cfg config.Config) (*App, error) {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	profileRepo := sqlite.NewProfileRepository(database.DB)
	cardRepo := sqlite.NewCardRepository(database.DB)
	bucketRepo := sqlite.NewBucketRepository(database.DB)
	reviewRepo := sqlite.NewReviewRepository(database.DB)

	importPool := worker.NewPool(cfg.ImportWorkerCount, cfg.ImportQueueSize)

	return &App{
		DB:              database,
		ImportPool:      importPool,
		ProfileService:  services.NewProfileService(profileRepo),
		CardService:     services.NewCardService(cardRepo),
		PracticeService: services.NewPracticeService(profileRepo, bucketRepo, reviewRepo, cfg.PracticeLimit),
		ImportService:   services.NewImportService(jobs.NewWorkerQueue(importPool, cardRepo), profileRepo, cardRepo),
	}, nil
}

// Close stops the import pool and closes the database.
func (a *App) Close() error {
	a.ImportPool.Stop()
	return a.DB.Close()
}
