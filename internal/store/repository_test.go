package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fraud-guard/internal/config"
	"github.com/MKhiriev/go-fraud-guard/internal/logger"
	"github.com/MKhiriev/go-fraud-guard/models"
)

func TestNewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		repo, err := NewRepository(ctx, config.Storage{Driver: config.StorageDriverMemory}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &kvRepository{}, repo)
	})

	t.Run("file", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "fg.json")
		repo, err := NewRepository(ctx, config.Storage{Driver: config.StorageDriverFile, DSN: dsn}, logger.Nop())
		require.NoError(t, err)
		assert.IsType(t, &kvRepository{}, repo)
	})

	t.Run("sqlite", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "fg.db")
		repo, err := NewRepository(ctx, config.Storage{Driver: config.StorageDriverSQLite, DSN: dsn}, logger.Nop())
		require.NoError(t, err)
		defer repo.Close()
		assert.IsType(t, &sqlRepository{}, repo)
	})

	t.Run("bad redis url", func(t *testing.T) {
		_, err := NewRepository(ctx, config.Storage{Driver: config.StorageDriverRedis, DSN: "http://nope"}, logger.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis connection error")
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := NewRepository(ctx, config.Storage{Driver: "cassandra"}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnknownDriver)
	})
}

// TestSQLiteRepository_HistoryRepeatedIDs stores records whose ids collide.
// Ids come from the model, so only the position keys a row.
func TestSQLiteRepository_HistoryRepeatedIDs(t *testing.T) {
	// Arrange
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "fg.db")
	repo, err := NewRepository(ctx, config.Storage{Driver: config.StorageDriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer repo.Close()

	first := sampleRecord("DNA-0001", 75)
	second := sampleRecord("DNA-0001", 30)
	second.Verdict = "second verdict"

	// Act
	require.NoError(t, repo.SaveHistory(ctx, []models.AnalysisRecord{first}))
	err = repo.SaveHistory(ctx, []models.AnalysisRecord{second, first})

	// Assert
	require.NoError(t, err)
	history, err := repo.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "second verdict", history[0].Verdict)
	assert.Equal(t, 30, history[0].RiskScore)
	assert.Equal(t, 75, history[1].RiskScore)
}
