// Package wiki talks to the Wikipedia Action API: it finds geotagged
// articles near a point, samples random geotagged articles for game rounds
// and fetches short text summaries.
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/time/rate"

	"github.com/guessipedia/guessipedia/internal/models"
)

const (
	// DefaultSampleRadius is the geosearch radius in meters used when
	// sampling random articles. 10 km hits something on most inhabited
	// sample points without flooding dense areas.
	DefaultSampleRadius = 10000

	// Random sample points stay between 80°S and 80°N: geosearch around the
	// poles almost never yields an article and just burns requests.
	sampleLatitudeLimit = 80

	// networkRetries bounds how many times a transient network failure is
	// retried before the sampling call gives up.
	networkRetries = 4

	requestsPerSecond = 5
)

// Placeholder summaries shown when the API cannot be reached. Gameplay keeps
// going with these instead of aborting the round.
const (
	placeholderTimeout = "(No description available. Access to Wikipedia timed out.)"
	placeholderFailed  = "(No description available. Access to Wikipedia failed.)"
)

// ErrMissingExtract is returned when a page exists but carries no extract.
var ErrMissingExtract = errors.New("wikipedia response carried no extract")

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a Wikipedia Action API client.
type Client struct {
	client       HTTPClient    // HTTP client for making requests
	baseURL      string        // Language-specific api.php endpoint
	userAgent    string        // Identifies the game per API etiquette
	log          *slog.Logger  // Logger for logging operations
	limiter      *rate.Limiter // Keeps the request rate polite
	rand         *rand.Rand    // Source for random sample points
	sampleRadius int           // Geosearch radius for random sampling, meters
	spinner      bool          // Show a sampling spinner on a TTY
}

// New creates a client for the given Wikipedia language edition ("en", "de", ...).
func New(log *slog.Logger, language string, timeout time.Duration, sampleRadius int) *Client {
	c := newClient(&http.Client{Timeout: timeout}, log)
	c.baseURL = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", language)
	c.sampleRadius = sampleRadius
	c.spinner = true
	return c
}

// NewWithClient creates a client with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewWithClient(client HTTPClient, log *slog.Logger) *Client {
	return newClient(client, log)
}

func newClient(client HTTPClient, log *slog.Logger) *Client {
	seed := uint64(time.Now().UnixNano())
	return &Client{
		client:       client,
		baseURL:      "https://en.wikipedia.org/w/api.php",
		userAgent:    "guessipedia/1.0 (https://github.com/guessipedia/guessipedia)",
		log:          log,
		limiter:      rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		rand:         rand.New(rand.NewPCG(seed, seed>>32)),
		sampleRadius: DefaultSampleRadius,
	}
}

// Summary fetches the introductory extract of a page, shortened to
// maxSentences sentences. Network, HTTP and decoding failures never escape
// this boundary: they degrade into a placeholder description so a round can
// still be played.
func (c *Client) Summary(ctx context.Context, pageID int64, maxSentences int) string {
	text, err := c.extract(ctx, pageID)
	if err != nil {
		c.log.WarnContext(ctx, "Summary degraded to placeholder", "page_id", pageID, "error", err)
		if isTimeout(err) {
			return placeholderTimeout
		}
		return placeholderFailed
	}
	return shorten(text, maxSentences)
}

// SearchNearby returns up to limit geotagged articles within radiusMeters of
// pos. Every returned article carries coordinates: that is what the
// geosearch index stores.
func (c *Client) SearchNearby(
	ctx context.Context,
	pos models.Coordinates,
	radiusMeters, limit int,
) ([]models.Article, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("list", "geosearch")
	params.Set("gscoord", formatDegrees(pos.Latitude)+"|"+formatDegrees(pos.Longitude))
	params.Set("gsradius", strconv.Itoa(radiusMeters))
	params.Set("gslimit", strconv.Itoa(limit))

	var decoded geosearchResponse
	if err := c.call(ctx, params, &decoded); err != nil {
		return nil, fmt.Errorf("geosearch at %s: %w", pos, err)
	}

	articles := make([]models.Article, 0, len(decoded.Query.Geosearch))
	for _, hit := range decoded.Query.Geosearch {
		articles = append(articles, models.Article{
			Title:    hit.Title,
			Position: models.Coordinates{Latitude: hit.Lat, Longitude: hit.Lon},
			PageID:   hit.PageID,
		})
	}
	return articles, nil
}

// RandomArticles collects count random geotagged articles by sampling
// uniform points on the globe and geosearching around each. Sample points
// with no article nearby are simply resampled; transient network failures
// are retried with exponential backoff and only a persistent failure aborts.
func (c *Client) RandomArticles(ctx context.Context, count int) ([]models.Article, error) {
	bar := c.newSpinner()
	defer func() {
		if bar != nil {
			_ = bar.Finish()
		}
	}()

	articles := make([]models.Article, 0, count)
	for len(articles) < count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if bar != nil {
			_ = bar.Add(1)
		}

		point := c.samplePoint()
		found, err := backoff.Retry(ctx, func() ([]models.Article, error) {
			return c.SearchNearby(ctx, point, c.sampleRadius, 1)
		}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(networkRetries))
		if err != nil {
			return nil, fmt.Errorf("sampling random articles: %w", err)
		}
		if len(found) == 0 {
			continue
		}

		c.log.DebugContext(ctx, "Sampled article", "title", found[0].Title, "position", found[0].Position)
		articles = append(articles, found[0])
	}
	return articles, nil
}

// call performs one rate-limited GET against the API and decodes the JSON body.
func (c *Client) call(ctx context.Context, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Wikipedia API error", "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("wikipedia API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode wikipedia response: %w", err)
	}
	return nil
}

// extract fetches the raw introductory extract for a page.
func (c *Client) extract(ctx context.Context, pageID int64) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("pageids", strconv.FormatInt(pageID, 10))

	var decoded extractResponse
	if err := c.call(ctx, params, &decoded); err != nil {
		return "", err
	}

	for _, page := range decoded.Query.Pages {
		if page.Extract != "" {
			return page.Extract, nil
		}
	}
	return "", fmt.Errorf("%w: page %d", ErrMissingExtract, pageID)
}

func (c *Client) samplePoint() models.Coordinates {
	return models.Coordinates{
		Latitude:  float64(c.rand.IntN(2*sampleLatitudeLimit+1) - sampleLatitudeLimit),
		Longitude: float64(c.rand.IntN(361) - 180),
	}
}

func (c *Client) newSpinner() *progressbar.ProgressBar {
	if !c.spinner || !isatty.IsTerminal(os.Stderr.Fd()) {
		return nil
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Fetching articles"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
}

// shorten cuts text down to at most maxSentences sentences, splitting
// naively on full stops.
func shorten(text string, maxSentences int) string {
	if maxSentences <= 0 {
		return text
	}
	parts := strings.Split(text, ".")
	if len(parts) <= maxSentences {
		return text
	}
	return strings.Join(parts[:maxSentences], ".") + "."
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// geosearchResponse is the JSON shape of a list=geosearch query.
type geosearchResponse struct {
	Query struct {
		Geosearch []struct {
			PageID int64   `json:"pageid"`
			Title  string  `json:"title"`
			Lat    float64 `json:"lat"`
			Lon    float64 `json:"lon"`
		} `json:"geosearch"`
	} `json:"query"`
}

// extractResponse is the JSON shape of a prop=extracts query. Pages are
// keyed by their page id.
type extractResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}
