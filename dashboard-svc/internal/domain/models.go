package domain

import "time"

// RestaurantRecord is one restaurant's pre-computed review analytics. It is
// decoded once per page view and never mutated afterwards.
type RestaurantRecord struct {
	ID         int     `json:"restaurant_id"`
	Name       string  `json:"restaurant_name"`
	Category   string  `json:"category,omitempty"`
	Location   string  `json:"location,omitempty"`
	ImageURL   string  `json:"image_url,omitempty"`
	AvgRating  float64 `json:"avg_rating"`
	PriceRange string  `json:"price_range,omitempty"`

	AvgDeliveryMinutes int `json:"avg_delivery_time,omitempty"`

	Sentiment      *SentimentAnalysis `json:"sentiment_analysis,omitempty"`
	PositiveTopics []string           `json:"main_positive_topics"`
	NegativeTopics []string           `json:"main_negative_topics"`
	Aspects        map[string]float64 `json:"aspect_based_analysis,omitempty"`
	AISummary      string             `json:"ai_summary"`
	Alerts         []Alert            `json:"smart_alerts"`
	HealthScore    int                `json:"health_score"`

	TimeTrends []TrendPoint `json:"time_trends,omitempty"`
	WordCloud  []WordCount  `json:"word_cloud_data,omitempty"`
	Comments   []Comment    `json:"user_comments,omitempty"`

	Price           string       `json:"price,omitempty"`
	TrendDeltas     []TrendDelta `json:"trend_deltas,omitempty"`
	RootCauses      []RootCause  `json:"root_causes,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`
	Benchmark       string       `json:"benchmark,omitempty"`

	Shape Shape `json:"-"`
}

type SentimentAnalysis struct {
	TotalReviews       int     `json:"total_reviews"`
	PositiveCount      int     `json:"positive_count"`
	NegativeCount      int     `json:"negative_count"`
	NeutralCount       int     `json:"neutral_count,omitempty"`
	PositivePercentage float64 `json:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage,omitempty"`
}

type Alert struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}

type TrendPoint struct {
	Date     string `json:"date"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type Comment struct {
	UserRating int       `json:"user_rating"`
	Text       string    `json:"comment_text"`
	Sentiment  string    `json:"sentiment,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

type TrendDelta struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	Direction string `json:"direction"`
}

type RootCause struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// ListingSummary is the subset of a record the listing page shows.
type ListingSummary struct {
	ID         int     `json:"restaurant_id"`
	Name       string  `json:"restaurant_name"`
	Rating     float64 `json:"rating"`
	Category   string  `json:"category"`
	PriceRange string  `json:"price_range"`
}

// PageView is a record snapshot owned by a single page load.
type PageView struct {
	ID           string           `json:"id"`
	RestaurantID int              `json:"restaurant_id"`
	Variant      Variant          `json:"variant"`
	Record       RestaurantRecord `json:"record"`
	CreatedAt    time.Time        `json:"created_at"`
}

type FilterEvent struct {
	Type         string    `json:"type"`
	ViewID       string    `json:"view_id"`
	RestaurantID int       `json:"restaurant_id"`
	Issue        string    `json:"issue,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type AnalysisUpdate struct {
	Type         string    `json:"type"`
	RestaurantID int       `json:"restaurant_id"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventFilterSet       = "issue_filter_set"
	EventFilterCleared   = "issue_filter_cleared"
	EventAnalysisUpdated = "analysis_updated"
)

// IsEmpty reports a record that carries no identity at all, as produced by a
// `null` or `{}` payload.
func (r *RestaurantRecord) IsEmpty() bool {
	return r == nil || (r.ID == 0 && r.Name == "")
}
