package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielolaitan/invoice-agent/internal/async"
)

type fakeSource struct {
	ids     []string
	labeled []string
}

func (f *fakeSource) Search(context.Context, int64) ([]string, error) { return f.ids, nil }
func (f *fakeSource) Fetch(context.Context, string) (*Message, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeSource) MarkProcessed(_ context.Context, id string) error {
	f.labeled = append(f.labeled, id)
	return nil
}

type fakeChecker struct{ existing map[string]bool }

func (f *fakeChecker) ExistsBySourceEmailID(_ context.Context, id string) (bool, error) {
	return f.existing[id], nil
}

type fakeQueue struct{ jobs []async.Job }

func (f *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	f.jobs = append(f.jobs, job)
	return nil
}
func (f *fakeQueue) Shutdown(context.Context) {}

func TestSyncEnqueuesOnlyUnseenMessages(t *testing.T) {
	source := &fakeSource{ids: []string{"m1", "m2", "m3"}}
	checker := &fakeChecker{existing: map[string]bool{"m2": true}}
	queue := &fakeQueue{}
	svc := NewSyncService(source, checker, queue, 0, nil)

	stats, err := svc.SyncOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint32(3), stats.Found)
	assert.Equal(t, uint32(2), stats.Enqueued)
	assert.Equal(t, uint32(1), stats.Skipped)
	assert.Equal(t, uint32(0), stats.Failed)

	require.Len(t, queue.jobs, 2)
	assert.Equal(t, "m1", queue.jobs[0].MessageID)
	assert.Equal(t, "m3", queue.jobs[1].MessageID)
	// persisted messages get labeled so the next search drops them
	assert.Equal(t, []string{"m2"}, source.labeled)
}

func TestSyncEmptyMailbox(t *testing.T) {
	svc := NewSyncService(&fakeSource{}, &fakeChecker{}, &fakeQueue{}, 0, nil)

	stats, err := svc.SyncOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SyncStats{}, stats)
}

func TestDirSourceListsSupportedFilesOnce(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.pdf", "b.xlsx", "c.txt", ".hidden.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}

	src, err := NewDirSource(root, true)
	require.NoError(t, err)

	ids, err := src.Search(context.Background(), 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.pdf", "b.xlsx"}, ids)

	require.NoError(t, src.MarkProcessed(context.Background(), "a.pdf"))
	ids, err = src.Search(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.xlsx"}, ids)
}

func TestDirSourceFetchBuildsSingleAttachmentMessage(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "invoice.pdf"), []byte("%PDF-1.4"), 0o644))

	src, err := NewDirSource(root, true)
	require.NoError(t, err)

	msg, err := src.Fetch(context.Background(), "invoice.pdf")
	require.NoError(t, err)
	assert.Equal(t, "invoice.pdf", msg.ID)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "invoice.pdf", msg.Attachments[0].Filename)
	assert.Equal(t, "application/pdf", msg.Attachments[0].MIMEType)
	assert.Equal(t, []byte("%PDF-1.4"), msg.Attachments[0].Data)
}
