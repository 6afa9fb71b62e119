package render

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"review-insights/dashboard-svc/internal/domain"
	"review-insights/dashboard-svc/internal/filter"
)

const (
	// MaxTopics is how many positive or negative topics are shown.
	MaxTopics = 3
	// GaugeCircumference is 2πr of the r=40 health gauge, as drawn.
	GaugeCircumference = 251.2

	NotFoundText     = "اطلاعات این رستوران موجود نیست."
	InvalidIDText    = "رستوران مورد نظر یافت نشد."
	FailureText      = "بارگذاری اطلاعات رستوران ناموفق بود."
	EmptyListingText = "اطلاعات رستوران یافت نشد."
	NoneFoundText    = "موردی یافت نشد"
	ExpiredText      = "این صفحه منقضی شده است. لطفا دوباره رستوران را باز کنید."
)

var trendLabels = map[string]string{
	"temperature_issues": "افزایش گزارش غذای سرد",
	"weekend_delay":      "افزایش تاخیر آخر هفته",
}

// Options carries what the renderer needs from the page composer besides the
// record itself.
type Options struct {
	ViewID      string
	AspectOrder []string
	QRCodeURL   string
}

func (o Options) viewPath() string {
	return "/views/" + url.PathEscape(o.ViewID)
}

// IssueHref is the link that activates issue as the page filter.
func (o Options) IssueHref(issue string) string {
	return o.viewPath() + "?issue=" + url.QueryEscape(issue)
}

// ClearHref carries an empty issue so the clear action is told apart from a
// plain reload.
func (o Options) ClearHref() string {
	return o.viewPath() + "?issue="
}

func BuildHeader(rec *domain.RestaurantRecord, opts Options) Header {
	image := rec.ImageURL
	if image == "" {
		image = fmt.Sprintf("https://picsum.photos/seed/%d/800/400", rec.ID)
	}
	return Header{
		ImageURL:        image,
		Name:            rec.Name,
		Category:        rec.Category,
		PriceRange:      rec.PriceRange,
		Price:           rec.Price,
		Location:        rec.Location,
		Rating:          formatNumber(rec.AvgRating),
		ReviewCount:     sentimentOf(rec).TotalReviews,
		DeliveryMinutes: rec.AvgDeliveryMinutes,
		QRCodeURL:       opts.QRCodeURL,
	}
}

// BuildSummary shows the AI summary verbatim. withKeywords adds the joined
// topic lists used by the dashboard layout.
func BuildSummary(rec *domain.RestaurantRecord, withKeywords bool) Summary {
	s := Summary{
		Title: "خلاصه نظرات (هوش مصنوعی)",
		Text:  rec.AISummary,
	}
	if withKeywords {
		s.ShowKeywords = true
		s.PositiveKeywords = joinOrNone(rec.PositiveTopics)
		s.NegativeKeywords = joinOrNone(rec.NegativeTopics)
	}
	return s
}

func BuildHighlights(rec *domain.RestaurantRecord, state filter.State, opts Options, withPercentages bool) Highlights {
	h := Highlights{}
	for _, topic := range firstN(rec.PositiveTopics, MaxTopics) {
		h.Strengths = append(h.Strengths, Badge{Text: topic})
	}
	for _, topic := range firstN(rec.NegativeTopics, MaxTopics) {
		h.Issues = append(h.Issues, IssueBadge{
			Text:   topic,
			Href:   opts.IssueHref(topic),
			Active: state.Issue == topic,
		})
	}
	if withPercentages {
		s := sentimentOf(rec)
		h.ShowPercentages = true
		h.PositivePercentage = formatNumber(s.PositivePercentage)
		h.NegativePercentage = formatNumber(s.NegativePercentage)
	}
	return h
}

// BuildAlerts reports false when there is nothing to show; the alerts
// section is then left out entirely.
func BuildAlerts(rec *domain.RestaurantRecord) (Alerts, bool) {
	if len(rec.Alerts) == 0 {
		return Alerts{}, false
	}
	items := make([]string, 0, len(rec.Alerts))
	for _, a := range rec.Alerts {
		items = append(items, a.Message)
	}
	return Alerts{Items: items}, true
}

// BuildHealthGauge maps the score onto the gauge arc. Scores outside [0,100]
// are clamped for drawing; the number shown is the score as supplied.
func BuildHealthGauge(score int) HealthGauge {
	filled := math.Max(0, math.Min(100, float64(score)))
	return HealthGauge{
		Score:         score,
		Dash:          filled / 100 * GaugeCircumference,
		Circumference: GaugeCircumference,
	}
}

// DashArray is the SVG stroke-dasharray of the filled arc.
func (g HealthGauge) DashArray() string {
	return formatNumber(math.Round(g.Dash*100)/100) + " " + formatNumber(g.Circumference)
}

func BuildStats(rec *domain.RestaurantRecord, withNeutral bool) Stats {
	s := sentimentOf(rec)
	items := []Stat{
		{Value: strconv.Itoa(s.TotalReviews), Label: "تعداد نظرات", Tone: "primary"},
		{Value: strconv.Itoa(s.PositiveCount), Label: "نظرات مثبت", Tone: "positive"},
		{Value: strconv.Itoa(s.NegativeCount), Label: "نظرات منفی", Tone: "negative"},
	}
	if withNeutral {
		items = append(items, Stat{Value: strconv.Itoa(s.NeutralCount), Label: "نظرات خنثی", Tone: "neutral"})
	}
	items = append(items, Stat{Value: formatNumber(rec.AvgRating), Label: "میانگین امتیاز", Tone: "rating"})
	return Stats{Items: items}
}

func BuildReviews(rec *domain.RestaurantRecord, state filter.State, opts Options, title string) Reviews {
	r := Reviews{Title: title}
	if state.Active() {
		r.ActiveIssue = state.Issue
		r.ClearHref = opts.ClearHref()
	}
	for _, c := range state.Apply(rec.Comments) {
		item := ReviewItem{
			Text:      c.Text,
			Stars:     stars(c.UserRating),
			Sentiment: c.Sentiment,
		}
		if !c.CreatedAt.IsZero() {
			item.Date = c.CreatedAt.Format("2006/01/02")
		}
		r.Items = append(r.Items, item)
	}
	return r
}

// WordCloudEntry is one word handed to the word-cloud script.
type WordCloudEntry struct {
	Text string `json:"text"`
	Size int    `json:"size"`
}

// PrepareWordCloud doubles every count so small corpora still draw legibly.
func PrepareWordCloud(words []domain.WordCount) []WordCloudEntry {
	entries := make([]WordCloudEntry, 0, len(words))
	for _, w := range words {
		entries = append(entries, WordCloudEntry{Text: w.Word, Size: w.Count * 2})
	}
	return entries
}

func BuildTrendChart(rec *domain.RestaurantRecord) ChartMount {
	points := rec.TimeTrends
	if points == nil {
		points = []domain.TrendPoint{}
	}
	return ChartMount{
		Kind:    "trend",
		Title:   "روند نظرات",
		MountID: fmt.Sprintf("trend-chart-%d", rec.ID),
		Data:    mustJSON(points),
	}
}

func BuildWordCloud(rec *domain.RestaurantRecord) ChartMount {
	return ChartMount{
		Kind:    "wordcloud",
		Title:   "ابر کلمات",
		MountID: fmt.Sprintf("word-cloud-%d", rec.ID),
		Data:    mustJSON(PrepareWordCloud(rec.WordCloud)),
	}
}

func BuildTrendDeltas(deltas []domain.TrendDelta) TrendDeltas {
	t := TrendDeltas{}
	for _, d := range deltas {
		label, ok := trendLabels[d.Key]
		if !ok {
			label = d.Key
		}
		t.Items = append(t.Items, TrendDeltaRow{Label: label, Value: d.Value, Up: d.Direction != "down"})
	}
	return t
}

func BuildRootCauses(causes []domain.RootCause) RootCauses {
	rc := RootCauses{}
	for _, c := range causes {
		rc.Items = append(rc.Items, CauseRow{Text: c.Text, Percent: Percent(c.Confidence)})
	}
	return rc
}

func BuildListing(summaries []domain.ListingSummary) Block {
	if len(summaries) == 0 {
		return Message{Text: EmptyListingText, Tone: "muted"}
	}
	l := Listing{}
	for _, s := range summaries {
		l.Cards = append(l.Cards, ListingCard{
			Href:       fmt.Sprintf("/restaurant/%d", s.ID),
			ImageURL:   fmt.Sprintf("https://picsum.photos/seed/%d/400/250", s.ID),
			Name:       s.Name,
			Rating:     formatNumber(s.Rating),
			Category:   s.Category,
			PriceRange: s.PriceRange,
		})
	}
	return l
}

// sentimentOf guards records that carry no sentiment block, such as dish pages.
func sentimentOf(rec *domain.RestaurantRecord) domain.SentimentAnalysis {
	if rec.Sentiment == nil {
		return domain.SentimentAnalysis{}
	}
	return *rec.Sentiment
}

func stars(rating int) []bool {
	s := make([]bool, 5)
	for i := range s {
		s[i] = i < rating
	}
	return s
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return NoneFoundText
	}
	return strings.Join(items, "، ")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
