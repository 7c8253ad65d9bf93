package theme

import "context"

type UseCase interface {
	GetTheme(ctx context.Context, clientID string, systemPrefersDark bool) (Theme, error)
	ToggleTheme(ctx context.Context, clientID string, systemPrefersDark bool) (Theme, error)
}
