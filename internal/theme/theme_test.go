package theme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
)

type fakeStore struct {
	values  map[string]string
	readErr error
	setErr  error
	writes  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.readErr != nil {
		return "", false, s.readErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fakeStore) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.writes++
	s.values[key] = value
	return nil
}

func TestInitFallsBackToSystem(t *testing.T) {
	p := NewPreference(newFakeStore(), Key, true, logger.NewNop())
	assert.Equal(t, Dark, p.Init(context.Background()))

	p = NewPreference(newFakeStore(), Key, false, logger.NewNop())
	assert.Equal(t, Light, p.Init(context.Background()))
}

func TestInitUsesStoredValue(t *testing.T) {
	store := newFakeStore()
	store.values[Key] = "light"

	p := NewPreference(store, Key, true, logger.NewNop())
	assert.Equal(t, Light, p.Init(context.Background()))
	assert.Equal(t, 0, store.writes)
}

func TestInitIgnoresInvalidValue(t *testing.T) {
	store := newFakeStore()
	store.values[Key] = "sepia"

	p := NewPreference(store, Key, true, logger.NewNop())
	assert.Equal(t, Dark, p.Init(context.Background()))
}

func TestInitReadErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := newFakeStore()
	store.readErr = errors.New("disk gone")

	p := NewPreference(store, Key, false, logger.FromZap(zap.New(core)))

	assert.Equal(t, Light, p.Init(context.Background()))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "theme store read failed, using system theme", logs.All()[0].Message)
}

func TestToggleWritesBack(t *testing.T) {
	store := newFakeStore()
	p := NewPreference(store, KeyFor("abc"), false, logger.NewNop())
	p.Init(context.Background())

	got, err := p.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Dark, got)
	assert.Equal(t, Dark, p.Theme())
	assert.Equal(t, "dark", store.values["theme:abc"])

	got, err = p.Toggle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Light, got)
	assert.Equal(t, 2, store.writes)
}

func TestToggleWriteError(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("read-only")
	p := NewPreference(store, Key, false, logger.NewNop())

	got, err := p.Toggle(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Dark, got)
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, "theme", KeyFor(""))
	assert.Equal(t, "theme:42", KeyFor("42"))
}

func TestParse(t *testing.T) {
	got, ok := Parse("dark")
	assert.True(t, ok)
	assert.Equal(t, Dark, got)

	_, ok = Parse("Dark")
	assert.False(t, ok)
}
