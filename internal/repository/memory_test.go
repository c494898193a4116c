package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/msumanth960/epaper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEditionRepository_MostRecentFirst(t *testing.T) {
	repo := NewMemoryEditionRepository()
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		require.NoError(t, repo.Save(ctx, &models.Edition{ID: fmt.Sprintf("ep-%d", i)}))
	}

	recent, err := repo.List(ctx, 5)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "ep-7", recent[0].ID)
	assert.Equal(t, "ep-3", recent[4].ID)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestMemoryEditionRepository_SaveCopiesRecord(t *testing.T) {
	repo := NewMemoryEditionRepository()
	ctx := context.Background()
	e := &models.Edition{ID: "ep-1", EditionName: "Original"}

	require.NoError(t, repo.Save(ctx, e))
	e.EditionName = "Changed"

	got, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Original", got[0].EditionName)
}

func TestMemoryIncidentRepository_ListIsSnapshot(t *testing.T) {
	repo := NewMemoryIncidentRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, &models.Incident{ID: "inc-1"}))

	got, err := repo.List(ctx, 0)
	require.NoError(t, err)
	got[0].ID = "mutated"

	again, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, "inc-1", again[0].ID)
}

func TestMemoryIncidentRepository_EmptyList(t *testing.T) {
	got, err := NewMemoryIncidentRepository().List(context.Background(), 5)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemoryIncidentRepository_ConcurrentSaves(t *testing.T) {
	repo := NewMemoryIncidentRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Save(ctx, &models.Incident{ID: fmt.Sprintf("inc-%d", i)})
			_, _ = repo.List(ctx, 5)
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
