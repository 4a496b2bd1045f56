package kbsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatcherCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, DataFileName, sampleJSON)

	w, err := NewWatcher(newTestLogger(), 50*time.Millisecond, target, "", filepath.Join(t.TempDir(), "gone", "x.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan struct{}, 4)
	go w.Run(ctx, func(context.Context) { changes <- struct{}{} })

	writeFile(t, dir, "unrelated.json", "[]")
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte(sampleJSON), 0o600))
	}

	select {
	case <-changes:
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change notification")
	}

	select {
	case <-changes:
		t.Fatal("burst of writes should produce a single notification")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherIgnoresMissingDirectories(t *testing.T) {
	w, err := NewWatcher(newTestLogger(), time.Millisecond, filepath.Join(t.TempDir(), "missing", DataFileName))
	require.NoError(t, err)
	require.Empty(t, w.files)
	require.NoError(t, w.Close())
}
