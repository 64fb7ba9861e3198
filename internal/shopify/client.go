package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/config"
	"github.com/jafarshop/storefront/pkg/errors"
)

const (
	accessTokenHeader = "X-Shopify-Storefront-Access-Token"
	cacheTagsHeader   = "X-Shopify-Cache-Tags"
)

type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a new Storefront GraphQL client. The client makes exactly
// one outbound call per Execute invocation; there are no retries and no
// client-set deadline, so cancellation is the caller's context.
func NewClient(cfg config.ShopifyConfig, logger *zap.Logger) *Client {
	return &Client{
		endpoint:    cfg.Endpoint(),
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{},
		logger:      logger,
	}
}

// Request is a single GraphQL call. Cache is an optional cache-control hint
// forwarded upstream; Tags are opaque storefront cache tags, not interpreted
// locally.
type Request struct {
	Query     string
	Variables map[string]interface{}
	Cache     string
	Tags      []string
}

// Response is the parsed GraphQL response body plus the HTTP status.
type Response struct {
	Status int
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError represents a GraphQL-level error entry
type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// Execute posts the query to the Storefront endpoint and returns the parsed
// body. Any network failure, decode failure, non-2xx status, or top-level
// errors array comes back as a *errors.ShopifyError carrying the query that
// was in flight; the first GraphQL error is the one surfaced.
func (c *Client) Execute(ctx context.Context, r Request) (*Response, error) {
	jsonData, err := json.Marshal(graphQLRequest{Query: r.Query, Variables: r.Variables})
	if err != nil {
		return nil, errors.NewShopifyError(err, 0, "failed to marshal request", r.Query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, errors.NewShopifyError(err, 0, "failed to create request", r.Query)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(accessTokenHeader, c.accessToken)
	if r.Cache != "" {
		req.Header.Set("Cache-Control", r.Cache)
	}
	if len(r.Tags) > 0 {
		req.Header.Set(cacheTagsHeader, strings.Join(r.Tags, ","))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewShopifyError(err, 0, "failed to execute request", r.Query)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewShopifyError(err, resp.StatusCode, "failed to read response", r.Query)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Storefront API returned non-2xx status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, errors.NewShopifyError(
			fmt.Errorf("unexpected status %d", resp.StatusCode),
			resp.StatusCode,
			fmt.Sprintf("storefront API error: status %d", resp.StatusCode),
			r.Query,
		)
	}

	result := &Response{Status: resp.StatusCode}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, errors.NewShopifyError(err, resp.StatusCode, "failed to unmarshal response", r.Query)
	}

	if len(result.Errors) > 0 {
		first := result.Errors[0]
		c.logger.Error("Storefront API returned GraphQL errors",
			zap.String("message", first.Message),
			zap.Int("error_count", len(result.Errors)),
		)
		return nil, errors.NewShopifyError(nil, 0, first.Message, r.Query)
	}

	return result, nil
}
