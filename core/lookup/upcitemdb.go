package lookup

import (
	"context"
	"fmt"
)

// upcItemDBClient queries the UPCitemdb product lookup.
type upcItemDBClient struct {
	*apiClient
}

func newUPCItemDBClient(baseURL, contactEmail string) *upcItemDBClient {
	return &upcItemDBClient{apiClient: newAPIClient(baseURL, contactEmail)}
}

type upcItem struct {
	Title string `json:"title"`
}

type upcResponse struct {
	Items []upcItem `json:"items"`
}

// ProductTitle returns the free-text product title for a barcode, or an
// empty string when the database has no listing for it.
func (c *upcItemDBClient) ProductTitle(ctx context.Context, barcode string) (string, error) {
	endpoint := fmt.Sprintf("%s/prod/trial/lookup?upc=%s", c.baseURL, barcode)

	var result upcResponse
	if _, err := c.getJSON(ctx, endpoint, &result); err != nil {
		return "", err
	}

	if len(result.Items) == 0 {
		return "", nil
	}
	return result.Items[0].Title, nil
}
