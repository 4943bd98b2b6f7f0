package lookup

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"discbox/config"
	"discbox/logger"
)

// Failure reasons surfaced to the user. Every reason invites manual entry;
// none of them block the save flow.
const (
	ReasonServiceBusy = "MusicBrainz service temporarily unavailable. Please wait a moment and try again."
	ReasonCDNotFound  = "No CD information found for this barcode. Please enter details manually."
	ReasonDVDNotFound = "This barcode is not in the available databases. Please enter details manually."
)

// Result is the best-effort partial record produced by a lookup chain. Only
// the fields the chain actually populated are set.
type Result struct {
	Found    bool     `json:"found"`
	Reason   string   `json:"reason,omitempty"`
	Tried    []string `json:"tried,omitempty"` // barcode variants attempted, for diagnostics
	Title    string   `json:"title,omitempty"`
	Credit   string   `json:"credit,omitempty"` // artist for CDs, director for DVDs
	Year     int      `json:"year,omitempty"`
	Genre    string   `json:"genre,omitempty"`
	Minutes  int      `json:"minutes,omitempty"` // duration (CD) or runtime (DVD)
	Rating   string   `json:"rating,omitempty"`
	CoverURL string   `json:"coverUrl,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// Resolver turns a barcode into catalog metadata by querying the external
// catalogs in a fixed fallback order. It never returns an error: every
// upstream failure is folded into a not-found Result so the caller can always
// fall back to manual entry.
type Resolver struct {
	mb       *musicBrainzClient
	coverArt *coverArtClient
	upc      *upcItemDBClient
	omdb     *omdbClient

	// Courtesy pauses towards the shared public services. These are not
	// retry backoff; they space out calls within one resolution chain.
	variantDelay  time.Duration
	coverDelay    time.Duration
	durationDelay time.Duration
}

// NewResolver creates a resolver from the application configuration.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		mb:            newMusicBrainzClient(cfg.MusicBrainzURL, cfg.ContactEmail),
		coverArt:      newCoverArtClient(cfg.CoverArtURL, cfg.ContactEmail),
		upc:           newUPCItemDBClient(cfg.UPCItemDBURL, cfg.ContactEmail),
		omdb:          newOMDbClient(cfg.OMDbURL, cfg.OMDbAPIKey, cfg.ContactEmail),
		variantDelay:  cfg.CourtesyDelay,
		coverDelay:    cfg.CourtesyDelay / 2,
		durationDelay: cfg.CourtesyDelay,
	}
}

// ResolveCD resolves an audio disc barcode through MusicBrainz and the Cover
// Art Archive.
func (r *Resolver) ResolveCD(ctx context.Context, barcode string) Result {
	variants := Variants(barcode)
	result := Result{Tried: variants}

	var release *mbRelease
	for i, variant := range variants {
		if i > 0 {
			r.sleep(ctx, r.variantDelay)
		}

		found, err := r.mb.SearchReleaseByBarcode(ctx, variant)
		if err != nil {
			if errors.Is(err, errServiceBusy) {
				result.Reason = ReasonServiceBusy
				return result
			}
			logger.Warn("MusicBrainz search failed",
				logger.String("barcode", variant),
				logger.ErrorField(err))
			continue
		}
		if found != nil {
			release = found
			break
		}
	}

	if release == nil {
		result.Reason = ReasonCDNotFound
		return result
	}

	result.Found = true
	result.Title = release.Title
	result.Credit = joinArtistNames(release.ArtistCredit)
	if year, ok := yearPrefix(release.Date); ok {
		result.Year = year
	}

	if release.ID == "" {
		return result
	}

	// Cover art and duration are independently best-effort: either call may
	// fail without affecting the rest of the result.
	r.sleep(ctx, r.coverDelay)
	coverURL, err := r.coverArt.FrontCoverURL(ctx, release.ID)
	if err != nil {
		logger.Debug("cover art not available",
			logger.String("releaseId", release.ID),
			logger.ErrorField(err))
	} else {
		result.CoverURL = coverURL
	}

	r.sleep(ctx, r.durationDelay)
	totalMillis, err := r.mb.ReleaseTotalMillis(ctx, release.ID)
	if err != nil {
		logger.Debug("duration not available",
			logger.String("releaseId", release.ID),
			logger.ErrorField(err))
	} else {
		result.Minutes = MillisToMinutes(totalMillis)
	}

	return result
}

// ResolveDVD resolves a video disc barcode: product lookup first, then the
// movie catalog by extracted title. No zero-padding variants are tried and
// there is no further fallback.
func (r *Resolver) ResolveDVD(ctx context.Context, barcode string) Result {
	result := Result{Tried: []string{barcode}}

	productTitle, err := r.upc.ProductTitle(ctx, barcode)
	if err != nil {
		logger.Warn("product lookup failed",
			logger.String("barcode", barcode),
			logger.ErrorField(err))
	}
	if productTitle == "" {
		result.Reason = ReasonDVDNotFound
		return result
	}

	candidate, year := ExtractTitleYear(productTitle)
	if candidate == "" {
		result.Reason = ReasonDVDNotFound
		return result
	}

	movie, err := r.omdb.FindMovie(ctx, candidate, year)
	if err != nil {
		logger.Warn("movie lookup failed",
			logger.String("title", candidate),
			logger.ErrorField(err))
	}
	if movie == nil {
		result.Reason = ReasonDVDNotFound
		return result
	}

	result.Found = true
	result.Title = movie.Title
	if available(movie.Director) {
		result.Credit = movie.Director
	}
	if y, ok := yearPrefix(movie.Year); ok {
		result.Year = y
	}
	if available(movie.Genre) {
		result.Genre = strings.TrimSpace(strings.Split(movie.Genre, ",")[0])
	}
	if available(movie.Runtime) {
		if minutes, ok := firstInt(movie.Runtime); ok {
			result.Minutes = minutes
		}
	}
	result.Rating = MapRating(movie.Rated)
	if available(movie.Poster) {
		result.CoverURL = movie.Poster
	}
	if available(movie.Plot) {
		result.Notes = fmt.Sprintf("%s\n\nUS Rating: %s", movie.Plot, movie.Rated)
	}

	return result
}

// sleep pauses for the courtesy delay, returning early if ctx is cancelled.
func (r *Resolver) sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func joinArtistNames(credits []mbArtistCredit) string {
	names := make([]string, 0, len(credits))
	for _, credit := range credits {
		names = append(names, credit.Name)
	}
	return strings.Join(names, ", ")
}

// yearPrefix takes the four-digit year prefix of a release date like
// "2010-06-21" or an OMDb year like "2010".
func yearPrefix(date string) (int, bool) {
	if len(date) < 4 {
		return 0, false
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0, false
	}
	return year, true
}

// firstInt extracts the first integer in a string like "148 min".
func firstInt(s string) (int, bool) {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, err := strconv.Atoi(s[start:i])
			return n, err == nil
		}
	}
	if start >= 0 {
		n, err := strconv.Atoi(s[start:])
		return n, err == nil
	}
	return 0, false
}

// available reports whether an OMDb field holds a real value rather than the
// "N/A" sentinel.
func available(field string) bool {
	return field != "" && field != "N/A"
}
