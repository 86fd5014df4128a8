package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/kirychukyurii/deck-status/internal/config"
	"github.com/kirychukyurii/deck-status/internal/model"
	"github.com/kirychukyurii/deck-status/internal/util"
)

const shufflePath = "/api/deck/new/shuffle/"

// DeckRepository defines the interface for deck API operations
type DeckRepository interface {
	// Shuffle requests a new shuffled deck made of deckCount decks
	Shuffle(ctx context.Context, deckCount int) (*model.DeckResponse, error)

	// Ping checks that the deck API answers at all
	Ping(ctx context.Context) error

	// BaseURL returns the configured API root
	BaseURL() string
}

// deckClient implements DeckRepository over HTTP
type deckClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewDeckRepository creates a deck API client from configuration
func NewDeckRepository(cfg config.DeckAPIConfig, logger *slog.Logger) (DeckRepository, error) {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = cfg.Timeout

	// Configure TLS if provided
	if cfg.TLS != nil {
		tlsConfig, err := util.LoadTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to load TLS config: %w", err)
		}
		httpClient.Transport.(*http.Transport).TLSClientConfig = tlsConfig
	}

	return &deckClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the configured API root
func (c *deckClient) BaseURL() string {
	return c.baseURL
}

// Shuffle issues a single GET to the shuffle endpoint; there are no retries
func (c *deckClient) Shuffle(ctx context.Context, deckCount int) (*model.DeckResponse, error) {
	query := url.Values{}
	query.Set("deck_count", strconv.Itoa(deckCount))
	endpoint := c.baseURL + shufflePath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("requesting shuffled deck",
		slog.String("url", endpoint),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deck: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, model.NewAPIError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck response: %w", err)
	}

	return decodeDeck(body)
}

// Ping treats any answer below 500 as reachable
func (c *deckClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deck api unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return model.NewAPIError(resp.StatusCode)
	}

	return nil
}

// decodeDeck parses the body and checks the fields that get rendered:
// remaining must be an integral number and shuffled a boolean.
func decodeDeck(body []byte) (*model.DeckResponse, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode deck response: %w", err)
	}

	remaining, ok := raw["remaining"].(json.Number)
	if !ok {
		return nil, model.ErrInvalidResponse
	}
	count, ok := wholeNumber(remaining)
	if !ok {
		return nil, model.ErrInvalidResponse
	}

	shuffled, ok := raw["shuffled"].(bool)
	if !ok {
		return nil, model.ErrInvalidResponse
	}

	deck := &model.DeckResponse{
		Shuffled:  shuffled,
		Remaining: count,
	}
	deck.Success, _ = raw["success"].(bool)
	deck.DeckID, _ = raw["deck_id"].(string)

	return deck, nil
}

// wholeNumber accepts integral values in any JSON spelling (52, 52.0, 5.2e1)
// that fit in an int
func wholeNumber(n json.Number) (int, bool) {
	if i, err := n.Int64(); err == nil && i >= math.MinInt && i <= math.MaxInt {
		return int(i), true
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}
