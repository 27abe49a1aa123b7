package editor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Samuel-Loga/Personal-Website/pkg/storage"
)

// ImageUploader bridges the editor and the object store. Attach drops a
// placeholder block into the document immediately, ships the bytes in the
// background, and swaps the placeholder for the final image once the store
// confirms the write. A failed upload removes the placeholder so the
// document never renders a dead node.
type ImageUploader struct {
	Store storage.ObjectStore

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func MakeImageUploader(store storage.ObjectStore) *ImageUploader {
	return &ImageUploader{
		Store:    store,
		inFlight: make(map[string]struct{}),
	}
}

// Attach inserts a placeholder after the given block and starts the upload.
// It returns the placeholder key; the caller can watch the document's
// OnChange callback to observe the eventual swap or removal.
func (u *ImageUploader) Attach(ctx context.Context, doc *Document, afterKey, filename, contentType string, body io.Reader) (string, error) {
	key, err := doc.InsertPlaceholder(afterKey)
	if err != nil {
		return "", fmt.Errorf("placeholder insert failed: %w", err)
	}

	if !u.begin(key) {
		return "", fmt.Errorf("upload already running for %s", key)
	}

	go u.run(ctx, doc, key, filename, contentType, body)

	return key, nil
}

func (u *ImageUploader) run(ctx context.Context, doc *Document, key, filename, contentType string, body io.Reader) {
	defer u.finish(key)

	objectName := storage.ObjectName(time.Now(), filename)

	if err := u.Store.Upload(ctx, objectName, body, contentType); err != nil {
		slog.Error("image upload failed", "object", objectName, "error", err)

		if removeErr := doc.RemoveNode(key); removeErr != nil {
			slog.Error("placeholder cleanup failed", "key", key, "error", removeErr)
		}

		return
	}

	if err := doc.ReplacePlaceholder(key, u.Store.PublicURL(objectName), filename); err != nil {
		slog.Error("placeholder swap failed", "key", key, "error", err)
	}
}

func (u *ImageUploader) begin(key string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, busy := u.inFlight[key]; busy {
		return false
	}

	u.inFlight[key] = struct{}{}

	return true
}

func (u *ImageUploader) finish(key string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	delete(u.inFlight, key)
}

// Pending reports how many uploads are still running.
func (u *ImageUploader) Pending() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	return len(u.inFlight)
}
