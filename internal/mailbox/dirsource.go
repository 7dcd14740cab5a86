// Package mailbox supplies confirmation messages to the audit pipeline and
// matches them to reservations by guest name.
package mailbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/georgeokwiri254/Entered-On-Audit/internal/common"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/model"
	"github.com/georgeokwiri254/Entered-On-Audit/internal/service"
)

// DirSource reads exported messages from a directory tree. Each JSON file
// is one message; the immediate parent directory names the folder.
type DirSource struct {
	root   string
	logger *slog.Logger
}

func NewDirSource(root string, logger *slog.Logger) *DirSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirSource{root: root, logger: logger}
}

// Search implements service.MessageSource.
func (s *DirSource) Search(ctx context.Context, query service.MessageQuery) ([]model.Message, error) {
	if _, err := os.Stat(s.root); err != nil {
		return nil, fmt.Errorf("%w: %s", common.ErrMailboxUnavailable, s.root)
	}

	wantFolder := make(map[string]bool, len(query.Folders))
	for _, f := range query.Folders {
		wantFolder[strings.ToLower(f)] = true
	}

	var messages []model.Message
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".json") {
			return nil
		}

		folder := filepath.Base(filepath.Dir(path))
		if folder == filepath.Base(s.root) {
			folder = "Inbox"
		}
		if len(wantFolder) > 0 && !wantFolder[strings.ToLower(folder)] {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warn("skipping unreadable message", "path", path, "error", err)
			return nil
		}
		var msg model.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			s.logger.Warn("skipping malformed message", "path", path, "error", err)
			return nil
		}
		if msg.Folder == "" {
			msg.Folder = folder
		}
		if !query.Since.IsZero() && !msg.Received.IsZero() && msg.Received.Before(query.Since) {
			return nil
		}
		messages = append(messages, msg)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning mailbox export: %w", err)
	}

	return messages, nil
}
