package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frob/internal/adapters/watcher"
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
	"go.trai.ch/frob/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return watcher.NewWatcher(logger)
}

// nextEvent waits for one event or fails after a generous timeout.
func nextEvent(t *testing.T, events <-chan ports.WatchEvent) ports.WatchEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watch event")
		return ports.WatchEvent{}
	}
}

func TestWatcher_ReportsChangesToWatchedFile(t *testing.T) {
	dir := t.TempDir()
	batch := filepath.Join(dir, "sets.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(batch, []byte("sets: []\n"), domain.FilePerm))

	w := newTestWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, batch))
	t.Cleanup(func() { _ = w.Stop() })

	events := make(chan ports.WatchEvent, 16)
	go func() {
		for ev := range w.Events() {
			events <- ev
		}
		close(events)
	}()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), domain.FilePerm))
	require.NoError(t, os.WriteFile(batch, []byte("sets: [{coins: [3, 5]}]\n"), domain.FilePerm))

	ev := nextEvent(t, events)
	assert.Equal(t, batch, ev.Path)
	assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, ev.Operation)
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	dir := t.TempDir()
	batch := filepath.Join(dir, "sets.yaml")
	require.NoError(t, os.WriteFile(batch, nil, domain.FilePerm))

	w := newTestWatcher(t)
	require.NoError(t, w.Start(context.Background(), batch))
	require.NoError(t, w.Stop())

	done := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after Stop")
	}
}

func TestWatcher_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		w := newTestWatcher(t)
		err := w.Start(context.Background(), filepath.Join(t.TempDir(), "missing", "sets.yaml"))
		require.ErrorIs(t, err, domain.ErrWatchFailed)
	})

	t.Run("started twice", func(t *testing.T) {
		w := newTestWatcher(t)
		dir := t.TempDir()
		require.NoError(t, w.Start(context.Background(), filepath.Join(dir, "sets.yaml")))
		t.Cleanup(func() { _ = w.Stop() })

		err := w.Start(context.Background(), filepath.Join(dir, "sets.yaml"))
		require.ErrorIs(t, err, domain.ErrWatchFailed)
	})

	t.Run("stop before start", func(t *testing.T) {
		assert.NoError(t, newTestWatcher(t).Stop())
	})
}
