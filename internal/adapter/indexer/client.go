package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iho/ledgerexplorer/internal/domain"
)

// Default configuration values.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultPageSize = 1000
)

// Client reads ledger updates from a Chronicle instance and output details from a node.
// It implements usecase.OutputSource and usecase.OutputDetailResolver.
type Client struct {
	chronicleURL string
	nodeURL      string
	client       *http.Client
	pageSize     int
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithTimeout sets HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.client.Timeout = d
	}
}

// WithHTTPClient sets custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.client = client
	}
}

// WithPageSize sets the page size used when listing ledger updates.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// NewClient creates a new Client.
func NewClient(chronicleURL, nodeURL string, opts ...ClientOption) *Client {
	c := &Client{
		chronicleURL: strings.TrimRight(chronicleURL, "/"),
		nodeURL:      strings.TrimRight(nodeURL, "/"),
		client:       &http.Client{Timeout: DefaultTimeout},
		pageSize:     DefaultPageSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type ledgerUpdatesResponse struct {
	Address string         `json:"address"`
	Items   []ledgerUpdate `json:"items"`
	Cursor  string         `json:"cursor,omitempty"`
}

type ledgerUpdate struct {
	OutputID           string `json:"outputId"`
	IsSpent            bool   `json:"isSpent"`
	MilestoneIndex     uint32 `json:"milestoneIndex"`
	MilestoneTimestamp uint32 `json:"milestoneTimestamp"`
}

// ListOutputs pages through all ledger updates of address, oldest first, keeping the ones
// booked after since. The network argument is ignored: a Client talks to the instances of a
// single network. Use Networks to serve several.
func (c *Client) ListOutputs(ctx context.Context, _ string, address string, since uint32) ([]domain.RawOutputRef, error) {
	updates, err := c.ListLedgerUpdates(ctx, address, since)
	if err != nil {
		return nil, err
	}

	refs := make([]domain.RawOutputRef, len(updates))
	for i, u := range updates {
		refs[i] = u.RawOutputRef
	}

	return refs, nil
}

// ListLedgerUpdates is ListOutputs keeping the milestone index of every update.
// An address Chronicle has never seen has no updates.
func (c *Client) ListLedgerUpdates(ctx context.Context, address string, since uint32) ([]domain.LedgerUpdate, error) {
	var (
		updates []domain.LedgerUpdate
		cursor  string
	)

	for {
		query := url.Values{}
		query.Set("pageSize", strconv.Itoa(c.pageSize))
		query.Set("sort", "oldest")
		if cursor != "" {
			query.Set("cursor", cursor)
		}

		endpoint := fmt.Sprintf("%s/api/explorer/v2/ledger/updates/by-address/%s?%s",
			c.chronicleURL, url.PathEscape(address), query.Encode())

		var page ledgerUpdatesResponse
		if err := c.getJSON(ctx, endpoint, &page); err != nil {
			if errors.Is(err, errNotFound) {
				return updates, nil
			}
			return nil, fmt.Errorf("failed to list ledger updates: %w", err)
		}

		for _, item := range page.Items {
			if since != 0 && item.MilestoneTimestamp <= since {
				continue
			}
			updates = append(updates, domain.LedgerUpdate{
				RawOutputRef: domain.RawOutputRef{
					OutputID:           item.OutputID,
					IsSpent:            item.IsSpent,
					MilestoneTimestamp: item.MilestoneTimestamp,
				},
				MilestoneIndex: item.MilestoneIndex,
			})
		}

		if page.Cursor == "" || page.Cursor == cursor {
			return updates, nil
		}
		cursor = page.Cursor
	}
}

type outputResponse struct {
	Metadata *outputMetadata `json:"metadata"`
	Output   *outputBody     `json:"output"`
}

type outputMetadata struct {
	BlockID                  string `json:"blockId"`
	TransactionID            string `json:"transactionId"`
	OutputIndex              uint16 `json:"outputIndex"`
	IsSpent                  bool   `json:"isSpent"`
	TransactionIDSpent       string `json:"transactionIdSpent,omitempty"`
	MilestoneTimestampBooked uint32 `json:"milestoneTimestampBooked"`
	MilestoneTimestampSpent  uint32 `json:"milestoneTimestampSpent,omitempty"`
}

type outputBody struct {
	Type   int    `json:"type"`
	Amount string `json:"amount"`
}

// ResolveOutput fetches the body and metadata of an output from the node.
func (c *Client) ResolveOutput(ctx context.Context, _ string, outputID string) (*domain.OutputDetail, error) {
	endpoint := fmt.Sprintf("%s/api/core/v2/outputs/%s", c.nodeURL, url.PathEscape(outputID))

	var resp outputResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("output %s: %w", outputID, domain.ErrOutputNotFound)
		}
		return nil, fmt.Errorf("failed to fetch output %s: %w", outputID, err)
	}

	if resp.Metadata == nil || resp.Output == nil {
		return nil, fmt.Errorf("output %s: %w", outputID, domain.ErrMalformedOutput)
	}

	return &domain.OutputDetail{
		Amount:                   resp.Output.Amount,
		TransactionID:            resp.Metadata.TransactionID,
		TransactionIDSpent:       resp.Metadata.TransactionIDSpent,
		MilestoneTimestampBooked: resp.Metadata.MilestoneTimestampBooked,
	}, nil
}

var errNotFound = errors.New("not found")

func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformedOutput, err)
	}

	return nil
}
