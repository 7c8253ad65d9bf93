// Package theme keeps the light/dark preference. A Preference reads its
// store once on Init and writes it back on every Toggle.
package theme

import (
	"context"

	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"go.uber.org/zap"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Key is the store key for anonymous clients.
const Key = "theme"

// KeyFor scopes the key to a client when one is known.
func KeyFor(clientID string) string {
	if clientID == "" {
		return Key
	}
	return Key + ":" + clientID
}

func Parse(v string) (Theme, bool) {
	switch Theme(v) {
	case Light, Dark:
		return Theme(v), true
	}
	return "", false
}

// System maps the platform's dark-mode hint to a theme.
func System(prefersDark bool) Theme {
	if prefersDark {
		return Dark
	}
	return Light
}

func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

type Preference struct {
	store    Store
	key      string
	fallback Theme
	current  Theme
	logger   logger.ZapLogger
}

func NewPreference(store Store, key string, systemPrefersDark bool, log logger.ZapLogger) *Preference {
	fallback := System(systemPrefersDark)
	return &Preference{
		store:    store,
		key:      key,
		fallback: fallback,
		current:  fallback,
		logger:   log,
	}
}

// Init loads the stored theme. A missing, unreadable or invalid value leaves
// the system theme in place.
func (p *Preference) Init(ctx context.Context) Theme {
	v, ok, err := p.store.Get(ctx, p.key)
	switch {
	case err != nil:
		p.logger.Warn("theme store read failed, using system theme", zap.String("key", p.key), zap.Error(err))
	case !ok:
	default:
		if t, valid := Parse(v); valid {
			p.current = t
		} else {
			p.logger.Debug("ignoring invalid stored theme", zap.String("key", p.key), zap.String("value", v))
		}
	}
	return p.current
}

func (p *Preference) Theme() Theme {
	return p.current
}

// Toggle flips the theme and persists it. On a write error the in-memory
// value is still flipped.
func (p *Preference) Toggle(ctx context.Context) (Theme, error) {
	p.current = p.current.Toggled()
	if err := p.store.Set(ctx, p.key, string(p.current)); err != nil {
		return p.current, err
	}
	return p.current, nil
}
