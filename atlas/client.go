package atlas

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"atlas-client/model"
)

const (
	Version = "0.3.0"

	// BaseURL is the production Atlas endpoint root.
	BaseURL = "https://atlas.fanfic.dev/v0"

	// The API asks clients to keep simultaneous requests low; limits
	// outside this range are rejected.
	minSemaLimit     = 1
	maxSemaLimit     = 3
	defaultSemaLimit = 2

	// Bulk queries cap out server-side at 10000 rows.
	maxBulkLimit = 10000
)

// Options configures a Client. The zero value works against the production
// API without authentication.
type Options struct {
	// User and Pass are the HTTP basic auth credentials for the API.
	User string
	Pass string

	// Headers are sent with every request, on top of the default
	// User-Agent (which they may override).
	Headers map[string]string

	// SemaLimit bounds in-flight requests. Values outside 1..3 fall back
	// to the default of 2.
	SemaLimit int

	// BaseURL overrides the production endpoint root.
	BaseURL string

	// Logger receives per-request debug lines. Defaults to a nop logger.
	Logger *zap.Logger
}

// Client wraps the Atlas FFN metadata API. Safe for concurrent use; the
// number of simultaneous requests is bounded by an internal semaphore.
type Client struct {
	http      *resty.Client
	sema      *semaphore.Weighted
	semaLimit int
	logger    *zap.Logger
}

// New builds a Client from opts.
func New(opts Options) *Client {
	limit := opts.SemaLimit
	if limit < minSemaLimit || limit > maxSemaLimit {
		limit = defaultSemaLimit
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New()
	httpClient.SetTransport(&http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 10 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
	})
	httpClient.SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", fmt.Sprintf("Atlas API wrapper/v%v (Go)", Version)).
		SetHeaders(opts.Headers).
		SetLogger(disableLogger{})
	if opts.User != "" || opts.Pass != "" {
		httpClient.SetBasicAuth(opts.User, opts.Pass)
	}

	return &Client{
		http:      httpClient,
		sema:      semaphore.NewWeighted(int64(limit)),
		semaLimit: limit,
		logger:    logger,
	}
}

// SemaLimit reports the current bound on simultaneous requests.
func (c *Client) SemaLimit() int {
	return c.semaLimit
}

// SetSemaLimit replaces the request semaphore. Limits outside 1..3 are an
// error; the API operator asks clients not to go higher.
func (c *Client) SetSemaLimit(limit int) error {
	if limit < minSemaLimit || limit > maxSemaLimit {
		return fmt.Errorf("sema limit must be between %v and %v inclusive, got %v", minSemaLimit, maxSemaLimit, limit)
	}
	c.sema = semaphore.NewWeighted(int64(limit))
	c.semaLimit = limit
	return nil
}

// MaxUpdateID fetches the maximum update_id currently in use.
func (c *Client) MaxUpdateID(ctx context.Context) (int, error) {
	var updateID int
	if err := c.getJSON(ctx, "/update_id", nil, &updateID); err != nil {
		return 0, err
	}
	return updateID, nil
}

// MaxStoryID fetches the maximum known FFN story id.
func (c *Client) MaxStoryID(ctx context.Context) (int, error) {
	var storyID int
	if err := c.getJSON(ctx, "/ffn/id", nil, &storyID); err != nil {
		return 0, err
	}
	return storyID, nil
}

// BulkQuery filters a GetBulkMetadata call. Zero-valued fields are left
// out of the query string. The *ILike fields take SQL ilike patterns
// (percent and underscore wildcards).
type BulkQuery struct {
	MinUpdateID      int
	MinFicID         int
	TitleILike       string
	DescriptionILike string
	RawFandomsILike  string
	AuthorID         int
	Limit            int
}

func (q BulkQuery) params() (map[string]string, error) {
	if q.Limit != 0 && (q.Limit < 1 || q.Limit > maxBulkLimit) {
		return nil, fmt.Errorf("limit must be between 1 and %v inclusive, got %v", maxBulkLimit, q.Limit)
	}

	params := make(map[string]string)
	if q.MinUpdateID != 0 {
		params["min_update_id"] = strconv.Itoa(q.MinUpdateID)
	}
	if q.MinFicID != 0 {
		params["min_fic_id"] = strconv.Itoa(q.MinFicID)
	}
	if q.TitleILike != "" {
		params["title_ilike"] = q.TitleILike
	}
	if q.DescriptionILike != "" {
		params["description_ilike"] = q.DescriptionILike
	}
	if q.RawFandomsILike != "" {
		params["raw_fandoms_ilike"] = q.RawFandomsILike
	}
	if q.AuthorID != 0 {
		params["author_id"] = strconv.Itoa(q.AuthorID)
	}
	if q.Limit != 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}
	return params, nil
}

// GetBulkMetadata fetches a block of story metadata matching query.
func (c *Client) GetBulkMetadata(ctx context.Context, query BulkQuery) ([]model.Story, error) {
	params, err := query.params()
	if err != nil {
		return nil, err
	}

	var records []map[string]any
	if err := c.getJSON(ctx, "/ffn/meta", params, &records); err != nil {
		return nil, err
	}

	stories, err := DecodeStories(records)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bulk metadata: %w", err)
	}
	return stories, nil
}

// GetStoryMetadata fetches the metadata of a single fic by its FFN id.
func (c *Client) GetStoryMetadata(ctx context.Context, ficID int) (model.Story, error) {
	var record map[string]any
	if err := c.getJSON(ctx, fmt.Sprintf("/ffn/meta/%v", ficID), nil, &record); err != nil {
		return model.Story{}, err
	}

	story, err := DecodeStory(Reshape(record))
	if err != nil {
		return model.Story{}, fmt.Errorf("failed to decode metadata for fic %v: %w", ficID, err)
	}
	return story, nil
}

// getJSON performs one semaphore-bounded GET and unmarshals the body into
// out. Non-2xx statuses become an *APIError.
func (c *Client) getJSON(ctx context.Context, endpoint string, params map[string]string, out any) error {
	if err := c.sema.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire request slot: %w", err)
	}
	defer c.sema.Release(1)

	requestID := uuid.NewString()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(endpoint)
	if err != nil {
		return fmt.Errorf("failed to get %v: %w", endpoint, err)
	}

	c.logger.Debug("atlas request",
		zap.String("request_id", requestID),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", resp.Time()),
	)

	if !resp.IsSuccess() {
		return &APIError{StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal %v response: %w", endpoint, err)
	}
	return nil
}

type disableLogger struct{}

func (d disableLogger) Errorf(string, ...interface{}) {}
func (d disableLogger) Warnf(string, ...interface{})  {}
func (d disableLogger) Debugf(string, ...interface{}) {}
