package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// apiClient is the shared HTTP plumbing for the external catalog clients.
// Every request identifies the application and the deployment contact in the
// User-Agent header, as the public catalogs ask clients to do.
type apiClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func newAPIClient(baseURL, contactEmail string) *apiClient {
	return &apiClient{
		baseURL:   baseURL,
		userAgent: fmt.Sprintf("discbox/1.0.0 (%s)", contactEmail),
		httpClient: &http.Client{
			Timeout: time.Second * 15,
		},
	}
}

// getJSON performs a GET and decodes the body into out. It returns the HTTP
// status code alongside any error so callers can treat specific statuses
// (404 from the cover archive, 503 from MusicBrainz) as data, not failure.
func (c *apiClient) getJSON(ctx context.Context, url string, out interface{}) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}

	return resp.StatusCode, nil
}
