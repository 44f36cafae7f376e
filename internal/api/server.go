package api

import (
	"context"

	"github.com/vytor/leitnerflash/internal/services"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	ProfileService  services.ProfileService
	CardService     services.CardService
	PracticeService services.PracticeService
	ImportService   services.ImportService
	// DB is pinged by the readiness probe. Nil skips the check.
	DB Pinger
}
