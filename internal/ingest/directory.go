package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/danielolaitan/invoice-agent/constants"
)

// DirSource treats a local directory as a mailbox: each supported file is one
// message with a single attachment and no body. Used by the batch CLI and in
// tests. MarkProcessed is tracked in memory only.
type DirSource struct {
	root       string
	skipHidden bool

	mu        sync.Mutex
	processed map[string]struct{}
}

func NewDirSource(root string, skipHidden bool) (*DirSource, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("root path is required")
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	return &DirSource{root: root, skipHidden: skipHidden, processed: map[string]struct{}{}}, nil
}

func (d *DirSource) Search(_ context.Context, maxResults int64) ([]string, error) {
	var ids []string
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // continue walking
		}
		if d.skipHidden && IsHidden(path) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			return nil
		}

		rel, err := filepath.Rel(d.root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.isProcessed(rel) {
			return nil
		}
		ids = append(ids, rel)
		if maxResults > 0 && int64(len(ids)) >= maxResults {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", d.root, err)
	}
	return ids, nil
}

func (d *DirSource) Fetch(_ context.Context, messageID string) (*Message, error) {
	path := filepath.Join(d.root, filepath.FromSlash(messageID))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", messageID, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", messageID, err)
	}

	return &Message{
		ID:      messageID,
		Subject: filepath.Base(messageID),
		Date:    info.ModTime(),
		Attachments: []Attachment{{
			Filename: filepath.Base(messageID),
			MIMEType: mimeFor(messageID),
			Data:     data,
		}},
	}, nil
}

func (d *DirSource) MarkProcessed(_ context.Context, messageID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.processed[messageID] = struct{}{}
	return nil
}

func (d *DirSource) isProcessed(messageID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.processed[messageID]
	return ok
}

func mimeFor(path string) string {
	switch constants.MapExtToFormat(filepath.Ext(path)) {
	case constants.PDF:
		return "application/pdf"
	case constants.XLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}

var _ MailSource = (*DirSource)(nil)
