// Package linear implements a client for the Linear GraphQL API along
// with the resource models, filter builders and validation the toolsets
// are built on.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultAPIURL is the public Linear GraphQL endpoint.
const DefaultAPIURL = "https://api.linear.app/graphql"

// Client is the Linear API surface the toolsets depend on. Each method
// performs exactly one round trip; pagination, retries and rate limiting
// are out of scope at this layer.
type Client interface {
	Issue(ctx context.Context, id string) (*Issue, error)
	Issues(ctx context.Context, filter *IssueFilter) ([]Issue, error)
	SearchIssues(ctx context.Context, query string) ([]Issue, error)
	CreateIssue(ctx context.Context, input IssueCreateInput) (*IssueCreateResult, error)
	UpdateIssue(ctx context.Context, id string, input IssueUpdateInput) (bool, error)

	Project(ctx context.Context, id string) (*Project, error)
	Projects(ctx context.Context, filter *ProjectFilter) ([]Project, error)
	SearchProjects(ctx context.Context, query string) ([]Project, error)
	CreateProject(ctx context.Context, input ProjectCreateInput) (*Project, error)
	UpdateProject(ctx context.Context, id string, input ProjectUpdateInput) (bool, error)
}

// GraphQLClient talks to the Linear GraphQL API over HTTP.
type GraphQLClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ Client = (*GraphQLClient)(nil)

// NewGraphQLClient creates a client for the given endpoint. A nil
// httpClient falls back to http.DefaultClient; an empty baseURL falls
// back to DefaultAPIURL. The apiKey goes into the Authorization header.
func NewGraphQLClient(httpClient *http.Client, baseURL, apiKey string) *GraphQLClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &GraphQLClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// do executes one GraphQL operation and decodes the data payload into
// out. API failures surface as errors with the API's own text; nothing
// is translated or retried here.
func (c *GraphQLClient) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach the Linear API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("linear API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var gqlResp graphqlResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		msgs := make([]string, len(gqlResp.Errors))
		for i, e := range gqlResp.Errors {
			msgs[i] = e.Message
		}
		return fmt.Errorf("linear API returned errors: %s", strings.Join(msgs, "; "))
	}

	if out != nil && gqlResp.Data != nil {
		if err := json.Unmarshal(gqlResp.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}
