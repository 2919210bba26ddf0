package store

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/profile/internal/models"
)

func TestLoginLog_MissingFileReadsEmpty(t *testing.T) {
	l := NewLoginLog(filepath.Join(t.TempDir(), "login-log.json"))

	entries, err := l.List()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestLoginLog_AppendNewestFirst(t *testing.T) {
	l := NewLoginLog(filepath.Join(t.TempDir(), "login-log.json"))

	require.NoError(t, l.Append(models.LoginRecord{Username: "first", IP: "10.0.0.1"}))
	require.NoError(t, l.Append(models.LoginRecord{Username: "second", IP: "10.0.0.2"}))

	entries, err := l.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "second", entries[0].Username)
	require.Equal(t, "first", entries[1].Username)
	require.NotEmpty(t, entries[0].ID)
	require.NotEmpty(t, entries[0].Timestamp)
}

func TestLoginLog_CapsAtFiftyOldestEvicted(t *testing.T) {
	l := NewLoginLog(filepath.Join(t.TempDir(), "login-log.json"))

	for i := 0; i < 55; i++ {
		require.NoError(t, l.Append(models.LoginRecord{Username: fmt.Sprintf("u%d", i)}))
	}

	entries, err := l.List()
	require.NoError(t, err)
	require.Len(t, entries, 50)
	require.Equal(t, "u54", entries[0].Username)
	require.Equal(t, "u5", entries[49].Username)
}
