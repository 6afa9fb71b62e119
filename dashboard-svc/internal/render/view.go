package render

import "review-insights/dashboard-svc/internal/domain"

// Page is the view tree for one rendered page. Blocks are drawn top to bottom
// in slice order.
type Page struct {
	Title   string
	Variant domain.Variant
	Blocks  []Block
}

// Block is one node of the view tree. Each concrete block is drawn by the
// template of the same name.
type Block interface {
	TemplateName() string
}

type Header struct {
	ImageURL        string
	Name            string
	Category        string
	PriceRange      string
	Price           string
	Location        string
	Rating          string
	ReviewCount     int
	DeliveryMinutes int
	QRCodeURL       string
}

type Summary struct {
	Title            string
	Text             string
	ShowKeywords     bool
	PositiveKeywords string
	NegativeKeywords string
}

type Badge struct {
	Text string
}

// IssueBadge is a negative topic; following Href activates it as the filter.
type IssueBadge struct {
	Text   string
	Href   string
	Active bool
}

type Highlights struct {
	Strengths          []Badge
	Issues             []IssueBadge
	ShowPercentages    bool
	PositivePercentage string
	NegativePercentage string
}

type AspectRow struct {
	Key     string
	Label   string
	Percent int
}

type Aspects struct {
	Rows []AspectRow
}

type Alerts struct {
	Items []string
}

type HealthGauge struct {
	Score         int
	Dash          float64
	Circumference float64
}

type Stat struct {
	Value string
	Label string
	Tone  string
}

type Stats struct {
	Items []Stat
}

type ReviewItem struct {
	Text      string
	Stars     []bool
	Sentiment string
	Date      string
}

type Reviews struct {
	Title       string
	Items       []ReviewItem
	ActiveIssue string
	ClearHref   string
}

// ChartMount is an empty element an external chart or word-cloud script
// draws into; Data is the prepared JSON array it consumes.
type ChartMount struct {
	Kind    string
	Title   string
	MountID string
	Data    string
}

type TrendDeltaRow struct {
	Label string
	Value string
	Up    bool
}

type TrendDeltas struct {
	Items []TrendDeltaRow
}

type CauseRow struct {
	Text    string
	Percent int
}

type RootCauses struct {
	Items []CauseRow
}

type Recommendations struct {
	Items []string
}

type Benchmark struct {
	Text string
}

// Row lays its children out side by side.
type Row struct {
	Children []Block
}

// Message replaces the whole page body with a single line of text, used for
// not-found and failure pages.
type Message struct {
	Text string
	Tone string
}

type ListingCard struct {
	Href       string
	ImageURL   string
	Name       string
	Rating     string
	Category   string
	PriceRange string
}

type Listing struct {
	Cards []ListingCard
}

func (Header) TemplateName() string          { return "header" }
func (Summary) TemplateName() string         { return "summary" }
func (Highlights) TemplateName() string      { return "highlights" }
func (Aspects) TemplateName() string         { return "aspects" }
func (Alerts) TemplateName() string          { return "alerts" }
func (HealthGauge) TemplateName() string     { return "health" }
func (Stats) TemplateName() string           { return "stats" }
func (Reviews) TemplateName() string         { return "reviews" }
func (ChartMount) TemplateName() string      { return "chart" }
func (TrendDeltas) TemplateName() string     { return "trends" }
func (RootCauses) TemplateName() string      { return "causes" }
func (Recommendations) TemplateName() string { return "recommendations" }
func (Benchmark) TemplateName() string       { return "benchmark" }
func (Row) TemplateName() string             { return "row" }
func (Message) TemplateName() string         { return "message" }
func (Listing) TemplateName() string         { return "listing" }
