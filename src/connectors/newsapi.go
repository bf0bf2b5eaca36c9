package connectors

// REST CLIENT FOR NEWSAPI.ORG /v2/everything
// RESTY ONLY + INTERNAL RETRY

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	logger "github.com/sirupsen/logrus"

	"forexsignals/src/model"
)

const (
	defaultNewsAPIBaseURL = "https://newsapi.org"
	everythingPath        = "/v2/everything"

	defaultRetryAttempts   = 3
	defaultRetryBaseDelay  = 500 * time.Millisecond
	defaultRetryMaxBackoff = 4 * time.Second
)

// NewsAPIClient fetches financial news batches from newsapi.org.
type NewsAPIClient struct {
	apiKey  string
	baseURL string
	http    *resty.Client
}

func isRetryableResp(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	// Retry on rate limiting and upstream server errors only.
	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
}

func NewNewsAPIClient(apiKey, baseURL string) *NewsAPIClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultNewsAPIBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(defaultRetryAttempts - 1).
		SetRetryWaitTime(defaultRetryBaseDelay).
		SetRetryMaxWaitTime(defaultRetryMaxBackoff).
		AddRetryCondition(isRetryableResp)

	return &NewsAPIClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    httpClient,
	}
}

// FetchFinancialNews pulls one batch of English-language forex/finance
// articles, newest first. Returns ErrMissingAPIKey when no credential is set
// and wraps everything upstream-shaped in ErrUpstream.
func (c *NewsAPIClient) FetchFinancialNews(ctx context.Context, query string, pageSize int) ([]model.RawArticle, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if pageSize <= 0 {
		pageSize = 30
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        query,
			"language": "en",
			"sortBy":   "publishedAt",
			"pageSize": strconv.Itoa(pageSize),
		}).
		SetHeader("X-Api-Key", c.apiKey).
		SetHeader("Accept", "application/json").
		Get(everythingPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		body := resp.Body()
		if len(body) > 1024 {
			body = body[:1024]
		}
		return nil, fmt.Errorf("%w: unexpected status %d. body: %s", ErrUpstream, resp.StatusCode(), string(body))
	}

	var decoded model.NewsAPIResponse
	if err := json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrUpstream, err)
	}
	if decoded.Status != "ok" {
		return nil, fmt.Errorf("%w: status %q: %s", ErrUpstream, decoded.Status, decoded.Message)
	}

	logger.WithFields(map[string]interface{}{
		"connector": "NewsAPIClient",
		"articles":  len(decoded.Articles),
		"total":     decoded.TotalResults,
	}).Info("Fetched news batch")

	return decoded.Articles, nil
}
