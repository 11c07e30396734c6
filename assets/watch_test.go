package assets_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/topdown/assets"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsYAMLChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := assets.NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	writeFile(t, dir, "notes.txt", "ignored")
	writeFile(t, dir, "rock.yaml", "width: 1\nheight: 1\nimage: rock.png\n")

	select {
	case name := <-w.Events:
		assert.Equal(t, filepath.Join(dir, "rock.yaml"), name)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for rock.yaml")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := assets.NewWatcher(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, open := <-w.Events
	assert.False(t, open)
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := assets.NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWatchCatalog(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rock.yaml", "width: 1\nheight: 1\nimage: rock.png\n")
	logger, _ := logtest.NewNullLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := assets.WatchCatalog(ctx, dir, logger)
	require.NoError(t, err)

	writeFile(t, dir, "crate.yaml", "width: 2\nheight: 2\nimage: crate.png\n")

	select {
	case catalog := <-updates:
		require.NotNil(t, catalog)
		_, ok := catalog.Type("crate")
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("catalog was not reloaded")
	}

	cancel()
	for range updates {
	}
}
