package lookup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// errServiceBusy marks the explicit service-busy signal (HTTP 503) from
// MusicBrainz. It aborts the variant loop instead of being retried.
var errServiceBusy = errors.New("musicbrainz service temporarily unavailable")

// musicBrainzClient queries the MusicBrainz web service.
type musicBrainzClient struct {
	*apiClient
}

func newMusicBrainzClient(baseURL, contactEmail string) *musicBrainzClient {
	return &musicBrainzClient{apiClient: newAPIClient(baseURL, contactEmail)}
}

type mbArtistCredit struct {
	Name string `json:"name"`
}

type mbRelease struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Date         string           `json:"date"`
	ArtistCredit []mbArtistCredit `json:"artist-credit"`
}

type mbSearchResponse struct {
	Releases []mbRelease `json:"releases"`
}

type mbTrack struct {
	Length int64 `json:"length"` // milliseconds
}

type mbMedium struct {
	Tracks []mbTrack `json:"tracks"`
}

type mbReleaseDetail struct {
	Media []mbMedium `json:"media"`
}

// SearchReleaseByBarcode returns the first release matching the barcode, or
// nil when the catalog has no release for it.
func (c *musicBrainzClient) SearchReleaseByBarcode(ctx context.Context, barcode string) (*mbRelease, error) {
	endpoint := fmt.Sprintf("%s/ws/2/release?query=%s&fmt=json",
		c.baseURL, url.QueryEscape("barcode:"+barcode))

	var result mbSearchResponse
	status, err := c.getJSON(ctx, endpoint, &result)
	if err != nil {
		if status == http.StatusServiceUnavailable {
			return nil, errServiceBusy
		}
		return nil, err
	}

	if len(result.Releases) == 0 {
		return nil, nil
	}
	return &result.Releases[0], nil
}

// ReleaseTotalMillis fetches the release with its track listing and sums the
// length of every track across every medium.
func (c *musicBrainzClient) ReleaseTotalMillis(ctx context.Context, releaseID string) (int64, error) {
	endpoint := fmt.Sprintf("%s/ws/2/release/%s?fmt=json&inc=recordings", c.baseURL, releaseID)

	var detail mbReleaseDetail
	if _, err := c.getJSON(ctx, endpoint, &detail); err != nil {
		return 0, err
	}

	return TotalTrackMillis(detail.Media), nil
}

// TotalTrackMillis sums track lengths in milliseconds across all media.
func TotalTrackMillis(media []mbMedium) int64 {
	var total int64
	for _, medium := range media {
		for _, track := range medium.Tracks {
			total += track.Length
		}
	}
	return total
}

// MillisToMinutes converts a track-length sum to whole minutes, rounding.
func MillisToMinutes(millis int64) int {
	if millis <= 0 {
		return 0
	}
	return int((millis + 30000) / 60000)
}
