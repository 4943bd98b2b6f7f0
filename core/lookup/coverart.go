package lookup

import (
	"context"
	"fmt"
)

// coverArtClient queries the Cover Art Archive.
type coverArtClient struct {
	*apiClient
}

func newCoverArtClient(baseURL, contactEmail string) *coverArtClient {
	return &coverArtClient{apiClient: newAPIClient(baseURL, contactEmail)}
}

type caaImage struct {
	Front      bool              `json:"front"`
	Image      string            `json:"image"`
	Thumbnails map[string]string `json:"thumbnails"`
}

type caaResponse struct {
	Images []caaImage `json:"images"`
}

// FrontCoverURL returns the medium-resolution thumbnail of the release's
// front cover, preferring the image flagged "front" over the first entry.
// An empty string means the archive has no usable image.
func (c *coverArtClient) FrontCoverURL(ctx context.Context, releaseID string) (string, error) {
	endpoint := fmt.Sprintf("%s/release/%s", c.baseURL, releaseID)

	var result caaResponse
	if _, err := c.getJSON(ctx, endpoint, &result); err != nil {
		return "", err
	}

	if len(result.Images) == 0 {
		return "", nil
	}

	cover := result.Images[0]
	for _, img := range result.Images {
		if img.Front {
			cover = img
			break
		}
	}

	if url, ok := cover.Thumbnails["500"]; ok {
		return url, nil
	}
	return "", nil
}
