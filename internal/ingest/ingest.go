package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/danielolaitan/invoice-agent/constants"
)

// Attachment is one downloaded email attachment.
type Attachment struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Message is one inbound email with its attachments fetched.
type Message struct {
	ID          string
	ThreadID    string
	From        string
	Subject     string
	Date        time.Time
	Body        string
	Attachments []Attachment
}

// MailSource abstracts the mailbox. The production implementation is Gmail;
// the batch CLI walks a local directory instead.
type MailSource interface {
	// Search returns the IDs of messages matching the ingest query that have
	// not been marked processed yet.
	Search(ctx context.Context, maxResults int64) ([]string, error)
	// Fetch downloads one message with its body and attachments.
	Fetch(ctx context.Context, messageID string) (*Message, error)
	// MarkProcessed labels the message so later searches skip it.
	MarkProcessed(ctx context.Context, messageID string) error
}

// AllowedExt reports whether a file extension is in the supported set.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
