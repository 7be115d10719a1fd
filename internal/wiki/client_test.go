package wiki_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guessipedia/guessipedia/internal/models"
	"github.com/guessipedia/guessipedia/internal/wiki"
)

// mockHTTPClient is a mock implementation of HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

// timeoutError mimics a net.Error timeout from the HTTP client.
type timeoutError struct{}

func (timeoutError) Error() string   { return "request timed out" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestClient_Summary(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("shortens to the requested sentence count", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "query", req.URL.Query().Get("action"))
				assert.Equal(t, "extracts", req.URL.Query().Get("prop"))
				assert.Equal(t, "1", req.URL.Query().Get("exintro"))
				assert.Equal(t, "1", req.URL.Query().Get("explaintext"))
				assert.Equal(t, "4138", req.URL.Query().Get("pageids"))
				assert.Contains(t, req.Header.Get("User-Agent"), "guessipedia")

				body := `{"query":{"pages":{"4138":{"extract":"First sentence. Second sentence. Third sentence."}}}}`
				return jsonResponse(http.StatusOK, body), nil
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		summary := client.Summary(ctx, 4138, 2)

		assert.Equal(t, "First sentence. Second sentence.", summary)
	})

	t.Run("short text is returned whole", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				body := `{"query":{"pages":{"7":{"extract":"Only sentence."}}}}`
				return jsonResponse(http.StatusOK, body), nil
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		assert.Equal(t, "Only sentence.", client.Summary(ctx, 7, 2))
	})

	t.Run("network failure degrades to a placeholder", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		summary := client.Summary(ctx, 7, 2)

		assert.Contains(t, summary, "No description available")
		assert.Contains(t, summary, "failed")
	})

	t.Run("timeout gets its own placeholder", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, timeoutError{}
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		summary := client.Summary(ctx, 7, 2)

		assert.Contains(t, summary, "No description available")
		assert.Contains(t, summary, "timed out")
	})

	t.Run("missing extract degrades to a placeholder", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"query":{"pages":{}}}`), nil
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		assert.Contains(t, client.Summary(ctx, 7, 2), "No description available")
	})

	t.Run("HTTP error degrades to a placeholder", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusServiceUnavailable, `upstream sad`), nil
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		assert.Contains(t, client.Summary(ctx, 7, 2), "No description available")
	})
}

func TestClient_SearchNearby(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("successful search", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "geosearch", req.URL.Query().Get("list"))
				assert.Equal(t, "60.45|22.26", req.URL.Query().Get("gscoord"))
				assert.Equal(t, "10000", req.URL.Query().Get("gsradius"))
				assert.Equal(t, "2", req.URL.Query().Get("gslimit"))

				body := `{"query":{"geosearch":[
					{"pageid":4138,"title":"Turku Castle","lat":60.4353,"lon":22.2281},
					{"pageid":4139,"title":"Turku Cathedral","lat":60.4518,"lon":22.2781}
				]}}`
				return jsonResponse(http.StatusOK, body), nil
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		articles, err := client.SearchNearby(ctx,
			models.Coordinates{Latitude: 60.45, Longitude: 22.26}, 10000, 2)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "Turku Castle", articles[0].Title)
		assert.Equal(t, int64(4138), articles[0].PageID)
		assert.InEpsilon(t, 60.4353, articles[0].Position.Latitude, 0.0001)
		assert.InEpsilon(t, 22.2281, articles[0].Position.Longitude, 0.0001)
	})

	t.Run("no articles nearby", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"query":{"geosearch":[]}}`), nil
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		articles, err := client.SearchNearby(ctx,
			models.Coordinates{Latitude: 0, Longitude: 0}, 10000, 1)

		require.NoError(t, err)
		assert.Empty(t, articles)
	})

	t.Run("HTTP error is returned", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadGateway, `bad gateway`), nil
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		articles, err := client.SearchNearby(ctx,
			models.Coordinates{Latitude: 0, Longitude: 0}, 10000, 1)

		require.Error(t, err)
		assert.Nil(t, articles)
		assert.Contains(t, err.Error(), "status 502")
	})
}

func TestClient_RandomArticles(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("resamples empty points until enough hits", func(t *testing.T) {
		var calls atomic.Int64
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				switch calls.Add(1) {
				case 2: // second sample point finds nothing
					return jsonResponse(http.StatusOK, `{"query":{"geosearch":[]}}`), nil
				default:
					body := `{"query":{"geosearch":[{"pageid":1,"title":"Somewhere","lat":10,"lon":20}]}}`
					return jsonResponse(http.StatusOK, body), nil
				}
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		articles, err := client.RandomArticles(ctx, 2)

		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, int64(3), calls.Load())
		for _, article := range articles {
			assert.Equal(t, "Somewhere", article.Title)
		}
	})

	t.Run("persistent network failure aborts", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		articles, err := client.RandomArticles(ctx, 1)

		require.Error(t, err)
		assert.Nil(t, articles)
		assert.Contains(t, err.Error(), "sampling random articles")
	})

	t.Run("cancelled context stops sampling", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"query":{"geosearch":[]}}`), nil
			},
		}

		client := wiki.NewWithClient(mockClient, logger)
		_, err := client.RandomArticles(cancelled, 1)

		require.ErrorIs(t, err, context.Canceled)
	})
}
