package usecase

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/fekuna/omnipos-storefront-service/internal/theme"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

const toggleStripes = 64

type themeUseCase struct {
	store  theme.Store
	logger logger.ZapLogger
	// toggles serializes read-flip-write per key within this process.
	toggles [toggleStripes]sync.Mutex
}

func NewThemeUseCase(store theme.Store, log logger.ZapLogger) theme.UseCase {
	return &themeUseCase{
		store:  store,
		logger: log,
	}
}

func (uc *themeUseCase) GetTheme(ctx context.Context, clientID string, systemPrefersDark bool) (theme.Theme, error) {
	return uc.preference(ctx, clientID, systemPrefersDark).Theme(), nil
}

// ToggleTheme flips the stored preference. Concurrent toggles for one client
// are applied one after another in this process; replicas sharing a Redis
// store can still interleave.
func (uc *themeUseCase) ToggleTheme(ctx context.Context, clientID string, systemPrefersDark bool) (theme.Theme, error) {
	mu := uc.toggleLock(theme.KeyFor(clientID))
	mu.Lock()
	defer mu.Unlock()

	pref := uc.preference(ctx, clientID, systemPrefersDark)

	t, err := pref.Toggle(ctx)
	if err != nil {
		uc.logger.Error("failed to persist theme", zap.String("client_id", clientID), zap.Error(err))
		return t, err
	}
	uc.logger.Debug("theme toggled", zap.String("client_id", clientID), zap.String("theme", string(t)))
	return t, nil
}

func (uc *themeUseCase) preference(ctx context.Context, clientID string, systemPrefersDark bool) *theme.Preference {
	pref := theme.NewPreference(uc.store, theme.KeyFor(clientID), systemPrefersDark, uc.logger)
	pref.Init(ctx)
	return pref
}

func (uc *themeUseCase) toggleLock(key string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return &uc.toggles[h.Sum32()%toggleStripes]
}
