// Package client provides an HTTP client for a remote biometric query service.

package client

import (
	"biometric-query/internal/biometric/models"
	"biometric-query/internal/config"
	"biometric-query/internal/remote/errors"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// maxErrorBody caps how much of a failed response body ends up in an error.
const maxErrorBody = 512

// Client defines a remote biometric query service client and sets its attributes.
type Client struct {
	baseURL    string
	matchPath  string
	healthPath string
	token      string
	httpClient *http.Client
	log        *zerolog.Logger
}

// NewClient initializes a new Client. The per-request deadline comes from the caller's context.
func NewClient(cfg *config.Config, logger *zerolog.Logger) (*Client, error) {
	logger.Debug().Msg("calling initializer of remote biometric client")
	base := strings.TrimRight(cfg.RemoteService.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("%s", errors.MissingBaseURLError)
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.InvalidBaseURLError, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%s: %q", errors.InvalidBaseURLError, base)
	}

	return &Client{
		baseURL:    base,
		matchPath:  cfg.RemoteService.MatchPath,
		healthPath: cfg.RemoteService.HealthPath,
		token:      cfg.RemoteService.Token,
		httpClient: &http.Client{},
		log:        logger,
	}, nil
}

// ProcessBiometricQuery sends the template and finger type to the remote service.
func (c *Client) ProcessBiometricQuery(ctx context.Context, template, fingerType string) (*models.QueryResult, error) {
	c.log.Debug().Msg("calling `ProcessBiometricQuery` method")

	body, err := json.Marshal(models.QueryRequest{
		Template:   template,
		FingerType: fingerType,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.MarshallingError, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.matchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.RequestCreationError, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errors.RequestExecutionError, err)
	}
	defer resp.Body.Close()

	if !successful(resp.StatusCode) {
		return nil, statusError(errors.UnexpectedStatusError, resp)
	}

	// A JSON null body leaves result nil and is rejected like any other malformed answer.
	var result *models.QueryResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%s: %w", errors.UnmarshallingError, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%s: empty result object", errors.UnmarshallingError)
	}

	c.log.Info().Bool("access_granted", result.AccessGranted).Float64("similarity", result.Similarity).Msg("remote biometric query completed")
	return result, nil
}

// HealthCheck verifies the remote service is available.
func (c *Client) HealthCheck(ctx context.Context) error {
	c.log.Debug().Msg("calling `HealthCheck` method")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.healthPath, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.RequestCreationError, err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.HealthCheckError, err)
	}
	defer resp.Body.Close()

	if !successful(resp.StatusCode) {
		return statusError(errors.HealthCheckError, resp)
	}
	return nil
}

// Target returns the address the client talks to.
func (c *Client) Target() string {
	return c.baseURL
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func successful(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}

func statusError(msg string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("%s %d: %s", msg, resp.StatusCode, strings.TrimSpace(string(body)))
}
