//go:build unit

package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"frontdesk/internal/domain/ledger"
	"frontdesk/internal/infra/store"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("missing file means no prior state", func(t *testing.T) {
		s := store.NewFileStore(filepath.Join(t.TempDir(), "frontdesk.json"))
		snap, err := s.Load()
		require.NoError(t, err)
		assert.Nil(t, snap)
	})

	t.Run("save then load round-trips the snapshot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "frontdesk.json")
		s := store.NewFileStore(path)

		l := ledger.New("Front Desk")
		l.AddRoom("101")
		provider := l.RegisterProvider("Hotel")
		provider.AddItem(ledger.NewItemService("Hot Beverage", 2.50))
		_, _, err := l.CreateReservation("C1", "Ada", "101", 2, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		snap := l.Snapshot()
		require.NoError(t, s.Save(snap))

		loaded, err := s.Load()
		require.NoError(t, err)
		if diff := cmp.Diff(snap, loaded, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("snapshot mismatch after reload (-saved +loaded):\n%s", diff)
		}
	})

	t.Run("save overwrites atomically, leaving no temp files", func(t *testing.T) {
		dir := t.TempDir()
		s := store.NewFileStore(filepath.Join(dir, "frontdesk.json"))

		require.NoError(t, s.Save(ledger.New("first").Snapshot()))
		require.NoError(t, s.Save(ledger.New("second").Snapshot()))

		loaded, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, "second", loaded.Name)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "frontdesk.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := store.NewFileStore(path).Load()
		require.ErrorIs(t, err, store.ErrCorrupt)
	})

	t.Run("unwritable directory", func(t *testing.T) {
		s := store.NewFileStore(filepath.Join(t.TempDir(), "missing", "frontdesk.json"))
		err := s.Save(ledger.New("Front Desk").Snapshot())
		require.ErrorIs(t, err, store.ErrWriteFailed)
	})
}
