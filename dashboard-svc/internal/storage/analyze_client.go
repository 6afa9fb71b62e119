package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"review-insights/dashboard-svc/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

// recordSchemaJSON is the minimum shape a record must have before it is bound
// to a page. Every layout must carry either a sentiment block or a dish product.
const recordSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "restaurant_id": { "type": "integer" },
    "id": { "type": "integer" },
    "restaurant_name": { "type": "string" },
    "avg_rating": { "type": "number" },
    "health_score": { "type": "number" },
    "sentiment_analysis": { "type": "object" },
    "sentiment_summary": { "type": "object" },
    "product": { "type": "object" },
    "main_positive_topics": { "type": "array", "items": { "type": "string" } },
    "main_negative_topics": { "type": "array", "items": { "type": "string" } },
    "aspect_based_analysis": { "type": "object", "additionalProperties": { "type": "number" } },
    "smart_alerts": { "type": "array" },
    "user_comments": {
      "type": "array",
      "items": { "type": "object", "properties": { "comment_text": { "type": "string" } } }
    }
  },
  "anyOf": [
    { "required": ["sentiment_analysis"] },
    { "required": ["sentiment_summary"] },
    { "required": ["product"] }
  ]
}`

var recordSchemaLoader = gojsonschema.NewStringLoader(recordSchemaJSON)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AnalyzeClient fetches pre-computed records from the analyze collaborator.
// It makes exactly one request per call and never retries.
type AnalyzeClient struct {
	BaseURL string
	Client  HTTPClient
}

func NewAnalyzeClient(baseURL string, client HTTPClient) *AnalyzeClient {
	return &AnalyzeClient{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

func (c *AnalyzeClient) FetchRecord(ctx context.Context, id int) (*domain.RestaurantRecord, error) {
	url := c.BaseURL + "/analyze/" + strconv.Itoa(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: analyze returned status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	return DecodeRecord(body)
}

// DecodeRecord validates and decodes one record payload. A null or empty
// object is reported as ErrRecordNotFound rather than as a malformed record.
func DecodeRecord(body []byte) (*domain.RestaurantRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, domain.ErrRecordNotFound
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrRecordNotFound
	}

	result, err := gojsonschema.Validate(recordSchemaLoader, gojsonschema.NewBytesLoader(trimmed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrMalformedRecord, strings.Join(issues, "; "))
	}

	var rec domain.RestaurantRecord
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	if rec.IsEmpty() {
		return nil, domain.ErrRecordNotFound
	}
	return &rec, nil
}
