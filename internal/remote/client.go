// Package remote downloads deck files over HTTP.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vytor/leitnerflash/internal/logger"
)

// MaxDeckBytes caps the size of a downloaded deck.
const MaxDeckBytes = 1 << 20

// Fetcher downloads deck files.
type Fetcher interface {
	FetchDeck(ctx context.Context, url string) ([]byte, error)
}

var _ Fetcher = (*Client)(nil)

type Client struct {
	httpClient *http.Client
}

func New() *Client {
	return &Client{httpClient: &http.Client{Timeout: 15 * time.Second}}
}

// IsURL reports whether ref should be fetched rather than read from disk.
func IsURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

func (c *Client) FetchDeck(ctx context.Context, url string) ([]byte, error) {
	log := logger.FromContext(ctx).WithPrefix("remote").WithField("url", url)

	log.Debug("fetching deck")
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/toml, text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch deck: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug("deck response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("deck status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDeckBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxDeckBytes {
		return nil, fmt.Errorf("deck larger than %d bytes", MaxDeckBytes)
	}

	log.Info("fetched deck: %d bytes", len(data))
	return data, nil
}
