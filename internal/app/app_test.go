package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/leitnerflash/internal/app"
	"github.com/vytor/leitnerflash/internal/config"
)

func TestNew_OpensDatabaseAndWiresServices(t *testing.T) {
	cfg := config.Config{
		DBPath:            "file:" + filepath.Join(t.TempDir(), "app.db"),
		ImportWorkerCount: 1,
		ImportQueueSize:   1,
	}

	a, err := app.New(cfg)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, a.DB.Ping(ctx))

	p, err := a.ProfileService.CreateProfile(ctx, "ana")
	require.NoError(t, err)
	set, err := a.PracticeService.DueCards(ctx, p.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Total)

	assert.NoError(t, a.Close())
}
