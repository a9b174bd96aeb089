package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/danielolaitan/invoice-agent/internal/ingest"
)

// searchQuery matches mails carrying attachments in the supported formats.
const searchQuery = "has:attachment filename:(pdf OR xlsx OR jpg OR jpeg OR png)"

type Config struct {
	CredentialsFile string
	TokenFile       string // saved OAuth token for an installed-app flow
	UserID          string // "me" for the authenticated mailbox
	ProcessedLabel  string // applied after successful ingest, excluded from searches
}

// Source implements ingest.MailSource on the Gmail API.
type Source struct {
	svc    *gmailapi.Service
	cfg    Config
	logger *slog.Logger

	labelID string
}

func NewSource(ctx context.Context, cfg Config, logger *slog.Logger) (*Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.UserID == "" {
		cfg.UserID = "me"
	}
	if cfg.ProcessedLabel == "" {
		cfg.ProcessedLabel = "invoice-agent/processed"
	}

	opts := []option.ClientOption{option.WithScopes(gmailapi.GmailModifyScope)}
	switch {
	case cfg.TokenFile != "" && fileExists(cfg.TokenFile):
		ts, err := userTokenSource(ctx, cfg.CredentialsFile, cfg.TokenFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithTokenSource(ts))
	case cfg.CredentialsFile != "" && fileExists(cfg.CredentialsFile):
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	default:
		logger.Warn("no gmail token or credentials file, using application default credentials")
	}
	svc, err := gmailapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gmail service: %w", err)
	}

	s := &Source{svc: svc, cfg: cfg, logger: logger}
	if err := s.resolveLabel(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Source) Search(ctx context.Context, maxResults int64) ([]string, error) {
	query := searchQuery + " -label:" + s.cfg.ProcessedLabel
	call := s.svc.Users.Messages.List(s.cfg.UserID).Q(query).Context(ctx)
	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("search mailbox: %w", err)
	}

	ids := make([]string, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		ids = append(ids, m.Id)
	}
	s.logger.Debug("mailbox searched", "query", query, "found", len(ids))
	return ids, nil
}

func (s *Source) Fetch(ctx context.Context, messageID string) (*ingest.Message, error) {
	raw, err := s.svc.Users.Messages.Get(s.cfg.UserID, messageID).Format("full").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get message %s: %w", messageID, err)
	}

	msg := &ingest.Message{
		ID:       raw.Id,
		ThreadID: raw.ThreadId,
		Date:     time.UnixMilli(raw.InternalDate),
	}
	if raw.Payload != nil {
		for _, h := range raw.Payload.Headers {
			switch h.Name {
			case "From":
				msg.From = h.Value
			case "Subject":
				msg.Subject = h.Value
			}
		}
		if err := s.walkParts(ctx, messageID, raw.Payload, msg); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

func (s *Source) MarkProcessed(ctx context.Context, messageID string) error {
	_, err := s.svc.Users.Messages.Modify(s.cfg.UserID, messageID, &gmailapi.ModifyMessageRequest{
		AddLabelIds: []string{s.labelID},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("label message %s: %w", messageID, err)
	}
	return nil
}

// walkParts collects plain-text bodies and downloads attachments with
// supported extensions. Unsupported attachments are skipped quietly.
func (s *Source) walkParts(ctx context.Context, messageID string, part *gmailapi.MessagePart, msg *ingest.Message) error {
	if part.Filename != "" {
		ext := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(partExt(part.Filename))), ".")
		if !ingest.AllowedExt(ext) {
			return nil
		}
		data, err := s.attachmentData(ctx, messageID, part)
		if err != nil {
			return err
		}
		msg.Attachments = append(msg.Attachments, ingest.Attachment{
			Filename: part.Filename,
			MIMEType: part.MimeType,
			Data:     data,
		})
		return nil
	}

	if part.MimeType == "text/plain" && part.Body != nil && part.Body.Data != "" {
		decoded, err := base64.URLEncoding.DecodeString(part.Body.Data)
		if err != nil {
			return fmt.Errorf("decode body of %s: %w", messageID, err)
		}
		if msg.Body != "" {
			msg.Body += "\n"
		}
		msg.Body += string(decoded)
	}

	for _, child := range part.Parts {
		if err := s.walkParts(ctx, messageID, child, msg); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) attachmentData(ctx context.Context, messageID string, part *gmailapi.MessagePart) ([]byte, error) {
	if part.Body == nil {
		return nil, fmt.Errorf("attachment %s has no body", part.Filename)
	}
	if part.Body.Data != "" {
		return base64.URLEncoding.DecodeString(part.Body.Data)
	}
	att, err := s.svc.Users.Messages.Attachments.Get(s.cfg.UserID, messageID, part.Body.AttachmentId).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("download attachment %s: %w", part.Filename, err)
	}
	return base64.URLEncoding.DecodeString(att.Data)
}

// resolveLabel finds or creates the processed label.
func (s *Source) resolveLabel(ctx context.Context) error {
	labels, err := s.svc.Users.Labels.List(s.cfg.UserID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("list labels: %w", err)
	}
	for _, l := range labels.Labels {
		if l.Name == s.cfg.ProcessedLabel {
			s.labelID = l.Id
			return nil
		}
	}

	created, err := s.svc.Users.Labels.Create(s.cfg.UserID, &gmailapi.Label{
		Name:                  s.cfg.ProcessedLabel,
		LabelListVisibility:   "labelHide",
		MessageListVisibility: "hide",
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("create label %s: %w", s.cfg.ProcessedLabel, err)
	}
	s.labelID = created.Id
	s.logger.Info("processed label created", "label", s.cfg.ProcessedLabel)
	return nil
}

// userTokenSource builds a token source from an installed-app credentials
// file and a previously saved OAuth token, refreshing it as needed.
func userTokenSource(ctx context.Context, credentialsFile, tokenFile string) (oauth2.TokenSource, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials %s: %w", credentialsFile, err)
	}
	conf, err := google.ConfigFromJSON(b, gmailapi.GmailModifyScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials %s: %w", credentialsFile, err)
	}
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, err
	}
	return conf.TokenSource(ctx, tok), nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open token %s: %w", path, err)
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("decode token %s: %w", path, err)
	}
	return tok, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func partExt(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[i:]
	}
	return ""
}
