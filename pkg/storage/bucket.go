package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Samuel-Loga/Personal-Website/metal/env"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

// ObjectStore is the file-object boundary of the hosted backend: upload a
// named object, resolve its public URL. The editor's image flow and the
// cover-image upload endpoint depend on this interface rather than on the
// concrete client so tests can run against an in-memory double.
type ObjectStore interface {
	Upload(ctx context.Context, name string, body io.Reader, contentType string) error
	PublicURL(name string) string
}

// Bucket talks to the hosted storage service over its REST surface.
// Objects land under a single bucket (blog-images in production).
type Bucket struct {
	endpoint string
	bucket   string
	apiKey   string
	client   *http.Client
}

func MakeBucket(e env.StorageEnvironment) *Bucket {
	return &Bucket{
		endpoint: strings.TrimRight(e.Endpoint, "/"),
		bucket:   e.Bucket,
		apiKey:   e.APIKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (b *Bucket) Upload(ctx context.Context, name string, body io.Reader, contentType string) error {
	target := fmt.Sprintf("%s/object/%s/%s", b.endpoint, b.bucket, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+b.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}

	defer portal.CloseWithLog(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := portal.ReadWithSizeLimit(resp.Body, 4096)

		return fmt.Errorf("upload rejected with status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return nil
}

func (b *Bucket) PublicURL(name string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", b.endpoint, b.bucket, url.PathEscape(name))
}

// ObjectName derives the stored name from the upload instant plus the
// original filename, mirroring how the authoring client names images.
func ObjectName(now time.Time, filename string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(filename), " ", "-")

	return fmt.Sprintf("%d-%s", now.UnixMilli(), cleaned)
}
