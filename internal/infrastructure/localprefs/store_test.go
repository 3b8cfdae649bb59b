package localprefs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stocksync-dashboard/internal/domain/entity"
	"github.com/jhoicas/stocksync-dashboard/internal/infrastructure/localprefs"
)

func TestStore_SobreviveAReabrir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "preferences.yaml")
	ctx := context.Background()

	s, err := localprefs.New(path)
	require.NoError(t, err)

	_, ok, err := s.Get(ctx, "c1", entity.PrefTheme)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "c1", entity.PrefTheme, "dark"))
	require.NoError(t, s.Set(ctx, "c1", entity.PrefSidebarCollapsed, "true"))
	require.NoError(t, s.Set(ctx, "c2", entity.PrefTheme, "light"))

	reopened, err := localprefs.New(path)
	require.NoError(t, err)

	v, ok, err := reopened.Get(ctx, "c1", entity.PrefTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)

	v, ok, err = reopened.Get(ctx, "c1", entity.PrefSidebarCollapsed)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	v, _, err = reopened.Get(ctx, "c2", entity.PrefTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", v)
}

func TestNew_ArchivoCorruptoEsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [b"), 0o600))

	_, err := localprefs.New(path)
	assert.Error(t, err)
}
