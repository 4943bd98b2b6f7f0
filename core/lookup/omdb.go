package lookup

import (
	"context"
	"fmt"
	"net/url"
)

// omdbClient queries the OMDb movie catalog.
type omdbClient struct {
	*apiClient
	apiKey string
}

func newOMDbClient(baseURL, apiKey, contactEmail string) *omdbClient {
	return &omdbClient{
		apiClient: newAPIClient(baseURL, contactEmail),
		apiKey:    apiKey,
	}
}

// omdbMovie is the single best match returned by OMDb. Unavailable fields
// carry the literal sentinel "N/A".
type omdbMovie struct {
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Rated    string `json:"Rated"`
	Genre    string `json:"Genre"`
	Runtime  string `json:"Runtime"`
	Director string `json:"Director"`
	Plot     string `json:"Plot"`
	Poster   string `json:"Poster"`
	Response string `json:"Response"`
}

// FindMovie searches for a movie by title and optional year. A nil result
// means OMDb reported no match.
func (c *omdbClient) FindMovie(ctx context.Context, title, year string) (*omdbMovie, error) {
	params := url.Values{}
	params.Set("t", title)
	params.Set("type", "movie")
	params.Set("apikey", c.apiKey)
	if year != "" {
		params.Set("y", year)
	}
	endpoint := fmt.Sprintf("%s/?%s", c.baseURL, params.Encode())

	var movie omdbMovie
	if _, err := c.getJSON(ctx, endpoint, &movie); err != nil {
		return nil, err
	}

	if movie.Response != "True" {
		return nil, nil
	}
	return &movie, nil
}
