// internal/gateway/shopify/client.go
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
)

// Scope selects which API surface (and access token) a call uses.
type Scope int

const (
	// ScopeStorefront authorizes cart and customer operations.
	ScopeStorefront Scope = iota
	// ScopeAdmin authorizes product, inventory and order mutations.
	ScopeAdmin
)

// Client is a GraphQL client for the commerce gateway. The same shop is
// reachable through two endpoints with separate tokens; Execute picks the
// endpoint from the requested scope.
type Client struct {
	shopDomain      string
	apiVersion      string
	storefrontToken string
	adminToken      string
	httpClient      *http.Client
	logger          *logrus.Logger

	// baseURL overrides the shop domain when set. Used by tests.
	baseURL string
}

// NewClient creates a new commerce gateway client
func NewClient(cfg config.ShopifyConfig, logger *logrus.Logger) *Client {
	// Normalize shop domain - remove https://, http://, and trailing slashes
	shopDomain := cfg.ShopDomain
	shopDomain = strings.TrimPrefix(shopDomain, "https://")
	shopDomain = strings.TrimPrefix(shopDomain, "http://")
	shopDomain = strings.TrimSuffix(shopDomain, "/")

	return &Client{
		shopDomain:      shopDomain,
		apiVersion:      cfg.APIVersion,
		storefrontToken: cfg.StorefrontToken,
		adminToken:      cfg.AdminToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// NewClientWithBaseURL creates a client pointed at an explicit base URL.
// Both scopes hit the same endpoint; intended for tests against a fake
// gateway server.
func NewClientWithBaseURL(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiVersion: "test",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse represents a GraphQL response
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError represents a GraphQL error
type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// UserError represents a mutation-level user error returned inside data
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// UserErrorsError carries mutation userErrors. It lets callers tell a
// request the gateway rejected apart from a transport failure.
type UserErrorsError struct {
	Errors []UserError
}

func (e *UserErrorsError) Error() string {
	messages := make([]string, len(e.Errors))
	for i, ue := range e.Errors {
		messages[i] = ue.Message
	}
	return fmt.Sprintf("gateway rejected the request: %s", strings.Join(messages, "; "))
}

// userErrorsToError wraps mutation userErrors, or returns nil when the
// slice is empty.
func userErrorsToError(errs []UserError) error {
	if len(errs) == 0 {
		return nil
	}
	return &UserErrorsError{Errors: errs}
}

func (c *Client) endpoint(scope Scope) (string, string) {
	if c.baseURL != "" {
		return c.baseURL + "/graphql.json", c.adminToken
	}
	switch scope {
	case ScopeAdmin:
		return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.shopDomain, c.apiVersion), c.adminToken
	default:
		return fmt.Sprintf("https://%s/api/%s/graphql.json", c.shopDomain, c.apiVersion), c.storefrontToken
	}
}

// Execute executes a GraphQL query/mutation against the given scope
func (c *Client) Execute(ctx context.Context, scope Scope, query string, variables map[string]interface{}) (*GraphQLResponse, error) {
	url, token := c.endpoint(scope)

	reqBody := GraphQLRequest{
		Query:     query,
		Variables: variables,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if scope == ScopeAdmin {
		req.Header.Set("X-Shopify-Access-Token", token)
	} else {
		req.Header.Set("X-Shopify-Storefront-Access-Token", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Commerce gateway returned non-200 response")
		return nil, fmt.Errorf("gateway error: status %d", resp.StatusCode)
	}

	var graphQLResp GraphQLResponse
	if err := json.Unmarshal(body, &graphQLResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(graphQLResp.Errors) > 0 {
		errorMessages := make([]string, len(graphQLResp.Errors))
		for i, gqlErr := range graphQLResp.Errors {
			errorMessages[i] = gqlErr.Message
		}
		return nil, fmt.Errorf("graphQL errors: %s", strings.Join(errorMessages, "; "))
	}

	return &graphQLResp, nil
}

// decode unmarshals the data payload of a response into out
func decode(resp *GraphQLResponse, out interface{}) error {
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to decode gateway payload: %w", err)
	}
	return nil
}
