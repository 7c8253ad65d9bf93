package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-storefront-service/internal/theme"
	"github.com/fekuna/omnipos-storefront-service/internal/theme/repository"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
)

func TestGetThemeDefaultsToSystem(t *testing.T) {
	uc := NewThemeUseCase(repository.NewMemoryStore(), logger.NewNop())

	got, err := uc.GetTheme(context.Background(), "", true)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)
}

func TestToggleThemePersistsPerClient(t *testing.T) {
	ctx := context.Background()
	uc := NewThemeUseCase(repository.NewMemoryStore(), logger.NewNop())

	got, err := uc.ToggleTheme(ctx, "alice", false)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)

	// the stored value wins over the system hint from now on
	got, _ = uc.GetTheme(ctx, "alice", false)
	assert.Equal(t, theme.Dark, got)

	got, _ = uc.GetTheme(ctx, "bob", false)
	assert.Equal(t, theme.Light, got)

	got, _ = uc.ToggleTheme(ctx, "alice", false)
	assert.Equal(t, theme.Light, got)
}

func TestConcurrentTogglesAreNotLost(t *testing.T) {
	ctx := context.Background()
	uc := NewThemeUseCase(repository.NewMemoryStore(), logger.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 101; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.ToggleTheme(ctx, "alice", false)
		}()
	}
	wg.Wait()

	// an odd number of flips from light ends on dark
	got, err := uc.GetTheme(ctx, "alice", false)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)
}
