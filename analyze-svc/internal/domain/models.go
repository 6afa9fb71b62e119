package domain

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrInvalidID = errors.New("invalid restaurant id")
	ErrNotFound  = errors.New("restaurant not found")
)

// Analysis is one pre-computed record as produced by the analysis pipeline.
// The payload is served byte for byte; only the id is interpreted.
type Analysis struct {
	RestaurantID int
	Payload      json.RawMessage
}

type AnalysisUpdate struct {
	Type         string    `json:"type"`
	RestaurantID int       `json:"restaurant_id"`
	Timestamp    time.Time `json:"timestamp"`
}

const EventAnalysisUpdated = "analysis_updated"
