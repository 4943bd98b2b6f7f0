package storage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
)

// CoverArchive mirrors external cover images into the MinIO bucket so the
// collection doesn't depend on third-party image hosting staying up.
type CoverArchive struct {
	bucket     string
	httpClient *http.Client
}

// NewCoverArchive creates a cover archive writing to the given bucket.
func NewCoverArchive(bucket string) *CoverArchive {
	return &CoverArchive{
		bucket: bucket,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether archiving is available.
func (a *CoverArchive) Enabled() bool {
	return minioClient != nil
}

// Archive downloads the image at sourceURL and stores it under
// covers/<kind>/<barcode>.jpg, returning the path it is served from.
func (a *CoverArchive) Archive(ctx context.Context, kind, barcode, sourceURL string) (string, error) {
	if minioClient == nil {
		return "", fmt.Errorf("minio client not initialized")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch cover image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code fetching cover: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	objectName := fmt.Sprintf("covers/%s/%s.jpg", kind, barcode)
	_, err = minioClient.PutObject(ctx, a.bucket, objectName, resp.Body, resp.ContentLength, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store cover image: %w", err)
	}

	return "/static/" + objectName, nil
}
