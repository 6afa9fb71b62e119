package domain

import (
	"encoding/json"
	"math"
	"sort"
	"strings"
	"time"
)

// wireRecord accepts every upstream layout of a restaurant record: the detail
// layout, the legacy dashboard layout (restaurant_info, sentiment_summary,
// top_themes) and the dish page layout (product, summary, reviews).
type wireRecord struct {
	RestaurantID   *int    `json:"restaurant_id"`
	ID             *int    `json:"id"`
	RestaurantName string  `json:"restaurant_name"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	Location       string  `json:"location"`
	ImageURL       string  `json:"image_url"`
	AvgRating      float64 `json:"avg_rating"`
	PriceRange     string  `json:"price_range"`
	AvgDelivery    float64 `json:"avg_delivery_time"`

	RestaurantInfo *struct {
		Rating          float64 `json:"rating"`
		Category        string  `json:"category"`
		Location        string  `json:"location"`
		PriceRange      string  `json:"price_range"`
		AvgDeliveryTime float64 `json:"avg_delivery_time"`
	} `json:"restaurant_info"`

	SentimentAnalysis *wireSentiment `json:"sentiment_analysis"`
	SentimentSummary  *wireSentiment `json:"sentiment_summary"`

	MainPositiveTopics []string `json:"main_positive_topics"`
	MainNegativeTopics []string `json:"main_negative_topics"`
	TopThemes          *struct {
		Positive []string `json:"top_positive_themes"`
		Negative []string `json:"top_negative_themes"`
	} `json:"top_themes"`

	AspectBasedAnalysis  map[string]float64 `json:"aspect_based_analysis"`
	AspectBasedSentiment map[string]float64 `json:"aspect_based_sentiment"`

	AISummary   string          `json:"ai_summary"`
	SmartAlerts json.RawMessage `json:"smart_alerts"`
	Alerts      []Alert         `json:"alerts"`
	HealthScore float64         `json:"health_score"`

	TimeTrends    []TrendPoint   `json:"time_trends"`
	WordCloudData []WordCount    `json:"word_cloud_data"`
	WordCloud     []string       `json:"word_cloud"`
	UserComments  []wireComment  `json:"user_comments"`
	Reviews       []wireDishItem `json:"reviews"`

	Price           string       `json:"price"`
	TrendDeltas     []TrendDelta `json:"trend_deltas"`
	RootCauses      []RootCause  `json:"root_causes"`
	Recommendations []string     `json:"recommendations"`
	Benchmark       string       `json:"benchmark"`

	Product *struct {
		Name   string  `json:"name"`
		Image  string  `json:"image"`
		Rating float64 `json:"rating"`
		Price  string  `json:"price"`
	} `json:"product"`
	Summary *struct {
		Short           string            `json:"short"`
		Strengths       []string          `json:"strengths"`
		Issues          []string          `json:"issues"`
		Trends          map[string]string `json:"trends"`
		Causes          []RootCause       `json:"causes"`
		Recommendations []string          `json:"recommendations"`
		Benchmark       string            `json:"benchmark"`
	} `json:"summary"`
}

type wireSentiment struct {
	TotalReviews       int      `json:"total_reviews"`
	PositiveCount      *int     `json:"positive_count"`
	NegativeCount      *int     `json:"negative_count"`
	NeutralCount       *int     `json:"neutral_count"`
	PositivePercentage *float64 `json:"positive_percentage"`
	NegativePercentage *float64 `json:"negative_percentage"`
	NeutralPercentage  *float64 `json:"neutral_percentage"`
	PositivePercent    *float64 `json:"positive_percent"`
	NegativePercent    *float64 `json:"negative_percent"`
	NeutralPercent     *float64 `json:"neutral_percent"`
}

type wireComment struct {
	UserRating float64 `json:"user_rating"`
	Text       string  `json:"comment_text"`
	Sentiment  string  `json:"sentiment"`
	CreatedAt  string  `json:"created_at"`
}

type wireDishItem struct {
	Text   string  `json:"text"`
	Rating float64 `json:"rating"`
}

// trendKeyOrder fixes the display order of the dish page trend deltas.
var trendKeyOrder = []string{"temperature_issues", "weekend_delay"}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON normalises any supported layout into the canonical record.
// When two layouts describe the same concept the detail layout wins.
func (r *RestaurantRecord) UnmarshalJSON(data []byte) error {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	rec := RestaurantRecord{
		Name:       firstNonEmpty(w.RestaurantName, w.Name),
		Category:   w.Category,
		Location:   w.Location,
		ImageURL:   w.ImageURL,
		AvgRating:  w.AvgRating,
		PriceRange: w.PriceRange,
		AISummary:  w.AISummary,
		Price:      w.Price,
		Benchmark:  w.Benchmark,
		Shape:      ShapeDetail,
	}
	switch {
	case w.RestaurantID != nil:
		rec.ID = *w.RestaurantID
	case w.ID != nil:
		rec.ID = *w.ID
	}
	rec.AvgDeliveryMinutes = int(math.Round(w.AvgDelivery))
	rec.HealthScore = int(math.Round(w.HealthScore))

	if info := w.RestaurantInfo; info != nil {
		rec.Shape = ShapeDashboard
		if rec.AvgRating == 0 {
			rec.AvgRating = info.Rating
		}
		rec.Category = firstNonEmpty(rec.Category, info.Category)
		rec.Location = firstNonEmpty(rec.Location, info.Location)
		rec.PriceRange = firstNonEmpty(rec.PriceRange, info.PriceRange)
		if rec.AvgDeliveryMinutes == 0 {
			rec.AvgDeliveryMinutes = int(math.Round(info.AvgDeliveryTime))
		}
	}

	switch {
	case w.SentimentAnalysis != nil:
		rec.Sentiment = w.SentimentAnalysis.normalise()
	case w.SentimentSummary != nil:
		rec.Shape = ShapeDashboard
		rec.Sentiment = w.SentimentSummary.normalise()
	}

	rec.PositiveTopics = w.MainPositiveTopics
	rec.NegativeTopics = w.MainNegativeTopics
	if w.TopThemes != nil {
		rec.Shape = ShapeDashboard
		if rec.PositiveTopics == nil {
			rec.PositiveTopics = w.TopThemes.Positive
		}
		if rec.NegativeTopics == nil {
			rec.NegativeTopics = w.TopThemes.Negative
		}
	}

	rec.Aspects = w.AspectBasedAnalysis
	if rec.Aspects == nil {
		rec.Aspects = w.AspectBasedSentiment
	}

	alerts, err := decodeAlerts(w.SmartAlerts)
	if err != nil {
		return err
	}
	if alerts == nil {
		alerts = w.Alerts
	}
	rec.Alerts = dropEmptyAlerts(alerts)

	rec.TimeTrends = w.TimeTrends
	rec.WordCloud = w.WordCloudData
	if rec.WordCloud == nil && len(w.WordCloud) > 0 {
		rec.WordCloud = countWords(w.WordCloud)
	}

	for _, c := range w.UserComments {
		rec.Comments = append(rec.Comments, Comment{
			UserRating: int(math.Round(c.UserRating)),
			Text:       c.Text,
			Sentiment:  c.Sentiment,
			CreatedAt:  parseTime(c.CreatedAt),
		})
	}
	if len(w.UserComments) > 0 && w.SentimentAnalysis == nil {
		rec.Shape = ShapeDashboard
	}

	rec.TrendDeltas = w.TrendDeltas
	rec.RootCauses = w.RootCauses
	rec.Recommendations = w.Recommendations

	if p := w.Product; p != nil {
		rec.Shape = ShapeDish
		rec.Name = firstNonEmpty(rec.Name, p.Name)
		rec.ImageURL = firstNonEmpty(rec.ImageURL, p.Image)
		rec.Price = firstNonEmpty(rec.Price, p.Price)
		if rec.AvgRating == 0 {
			rec.AvgRating = p.Rating
		}
	}
	if s := w.Summary; s != nil {
		rec.AISummary = firstNonEmpty(rec.AISummary, s.Short)
		if rec.PositiveTopics == nil {
			rec.PositiveTopics = s.Strengths
		}
		if rec.NegativeTopics == nil {
			rec.NegativeTopics = s.Issues
		}
		if rec.TrendDeltas == nil {
			rec.TrendDeltas = trendDeltas(s.Trends)
		}
		if rec.RootCauses == nil {
			rec.RootCauses = s.Causes
		}
		if rec.Recommendations == nil {
			rec.Recommendations = s.Recommendations
		}
		rec.Benchmark = firstNonEmpty(rec.Benchmark, s.Benchmark)
	}
	if rec.Comments == nil {
		for _, item := range w.Reviews {
			rec.Comments = append(rec.Comments, Comment{
				UserRating: int(math.Round(item.Rating)),
				Text:       item.Text,
			})
		}
	}

	*r = rec
	return nil
}

// normalise folds the two percentage spellings together. Counts missing from
// the legacy summary are derived by truncation so that positive+negative never
// exceeds the total.
func (w *wireSentiment) normalise() *SentimentAnalysis {
	s := &SentimentAnalysis{
		TotalReviews:       w.TotalReviews,
		PositivePercentage: firstFloat(w.PositivePercentage, w.PositivePercent),
		NegativePercentage: firstFloat(w.NegativePercentage, w.NegativePercent),
		NeutralPercentage:  firstFloat(w.NeutralPercentage, w.NeutralPercent),
	}
	s.PositiveCount = countOrDerived(w.PositiveCount, s.TotalReviews, s.PositivePercentage)
	s.NegativeCount = countOrDerived(w.NegativeCount, s.TotalReviews, s.NegativePercentage)
	s.NeutralCount = countOrDerived(w.NeutralCount, s.TotalReviews, s.NeutralPercentage)
	return s
}

func countOrDerived(count *int, total int, pct float64) int {
	if count != nil {
		return *count
	}
	return int(float64(total) * pct / 100)
}

// decodeAlerts accepts both a list of strings and a list of {message} objects.
func decodeAlerts(raw json.RawMessage) ([]Alert, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var messages []string
	if err := json.Unmarshal(raw, &messages); err == nil {
		alerts := make([]Alert, 0, len(messages))
		for _, m := range messages {
			alerts = append(alerts, Alert{Message: m})
		}
		return alerts, nil
	}
	var alerts []Alert
	if err := json.Unmarshal(raw, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func dropEmptyAlerts(alerts []Alert) []Alert {
	if alerts == nil {
		return nil
	}
	kept := make([]Alert, 0, len(alerts))
	for _, a := range alerts {
		if strings.TrimSpace(a.Message) != "" {
			kept = append(kept, a)
		}
	}
	return kept
}

// countWords turns a flat keyword list into word counts, first occurrence first.
func countWords(words []string) []WordCount {
	index := make(map[string]int, len(words))
	var counts []WordCount
	for _, w := range words {
		if i, ok := index[w]; ok {
			counts[i].Count++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, WordCount{Word: w, Count: 1})
	}
	return counts
}

func trendDeltas(trends map[string]string) []TrendDelta {
	if len(trends) == 0 {
		return nil
	}
	var keys []string
	for _, k := range trendKeyOrder {
		if _, ok := trends[k]; ok {
			keys = append(keys, k)
		}
	}
	var rest []string
	for k := range trends {
		if !contains(trendKeyOrder, k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keys = append(keys, rest...)

	deltas := make([]TrendDelta, 0, len(keys))
	for _, k := range keys {
		direction := "up"
		if strings.HasPrefix(strings.TrimSpace(trends[k]), "-") {
			direction = "down"
		}
		deltas = append(deltas, TrendDelta{Key: k, Value: trends[k], Direction: direction})
	}
	return deltas
}

func parseTime(value string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstFloat(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
