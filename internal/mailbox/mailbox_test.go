package mailbox

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/service"
)

func writeMessage(t *testing.T, dir, name string, msg model.Message) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0750))
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0600))
}

func TestDirSource_Search(t *testing.T) {
	root := t.TempDir()
	writeMessage(t, filepath.Join(root, "Inbox"), "a.json", model.Message{
		Sender:   "one@example.com",
		Subject:  "first",
		Received: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	writeMessage(t, filepath.Join(root, "Reservations"), "b.json", model.Message{
		Sender:   "two@example.com",
		Subject:  "second",
		Received: time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC),
	})

	src := NewDirSource(root, nil)

	all, err := src.Search(context.Background(), service.MessageQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Folder comes from the directory name.
	byFolder := map[string]string{}
	for _, m := range all {
		byFolder[m.Folder] = m.Subject
	}
	assert.Equal(t, "first", byFolder["Inbox"])
	assert.Equal(t, "second", byFolder["Reservations"])
}

func TestDirSource_FolderAndSinceFilters(t *testing.T) {
	root := t.TempDir()
	writeMessage(t, filepath.Join(root, "Inbox"), "old.json", model.Message{
		Subject:  "old",
		Received: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	writeMessage(t, filepath.Join(root, "Inbox"), "new.json", model.Message{
		Subject:  "new",
		Received: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	writeMessage(t, filepath.Join(root, "Archive"), "other.json", model.Message{
		Subject:  "archived",
		Received: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	src := NewDirSource(root, nil)
	got, err := src.Search(context.Background(), service.MessageQuery{
		Since:   time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Folders: []string{"inbox"},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Subject)
}

func TestDirSource_MalformedFilesSkipped(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.json"), []byte("{not json"), 0600))
	writeMessage(t, root, "good.json", model.Message{Subject: "ok"})

	got, err := NewDirSource(root, nil).Search(context.Background(), service.MessageQuery{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Subject)
}

func TestDirSource_MissingRoot(t *testing.T) {
	src := NewDirSource(filepath.Join(t.TempDir(), "absent"), nil)
	_, err := src.Search(context.Background(), service.MessageQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrMailboxUnavailable)
}

func TestMatchesGuest(t *testing.T) {
	msg := model.Message{
		Subject: "Confirmation for Mr Ahmed Hassan",
		Body:    "Stay details attached.",
	}

	assert.True(t, MatchesGuest(msg, "Ahmed", "Hassan"))
	assert.True(t, MatchesGuest(msg, "ahmed", "HASSAN"))
	assert.False(t, MatchesGuest(msg, "Maria", "Lopez"))

	// Any significant token is enough; the pipeline filters false
	// candidates later.
	assert.True(t, MatchesGuest(msg, "Ahmed", "Smithson"))

	// A name with no significant token falls back to the first name.
	assert.False(t, MatchesGuest(msg, "Bo", "Xu"))
	assert.True(t, MatchesGuest(model.Message{Subject: "room for mr bo"}, "Bo", "Xu"))
}
