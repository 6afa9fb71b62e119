package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"review-insights/dashboard-svc/internal/domain"
	"review-insights/dashboard-svc/internal/filter"
	"review-insights/dashboard-svc/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailRecord(t *testing.T) *domain.RestaurantRecord {
	t.Helper()
	var rec domain.RestaurantRecord
	require.NoError(t, json.Unmarshal([]byte(detailRecordJSON), &rec))
	return &rec
}

func blocksOf[T render.Block](blocks []render.Block) []T {
	var found []T
	for _, b := range blocks {
		if row, ok := b.(render.Row); ok {
			found = append(found, blocksOf[T](row.Children)...)
			continue
		}
		if typed, ok := b.(T); ok {
			found = append(found, typed)
		}
	}
	return found
}

func templateNames(blocks []render.Block) []string {
	names := make([]string, 0, len(blocks))
	for _, b := range blocks {
		names = append(names, b.TemplateName())
	}
	return names
}

func TestBuildHighlights_StrengthCount(t *testing.T) {
	tests := []struct {
		name     string
		topics   []string
		expected int
	}{
		{name: "none", topics: nil, expected: 0},
		{name: "two", topics: []string{"a", "b"}, expected: 2},
		{name: "three", topics: []string{"a", "b", "c"}, expected: 3},
		{name: "five", topics: []string{"a", "b", "c", "d", "e"}, expected: 3},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rec := &domain.RestaurantRecord{ID: 1, Name: "x", PositiveTopics: testCase.topics, NegativeTopics: testCase.topics}
			h := render.BuildHighlights(rec, filter.State{}, render.Options{ViewID: "v"}, false)
			assert.Len(t, h.Strengths, testCase.expected)
			assert.Len(t, h.Issues, testCase.expected)
		})
	}
}

func TestBuildHighlights_IssueLinks(t *testing.T) {
	rec := detailRecord(t)
	h := render.BuildHighlights(rec, filter.State{Issue: "تاخیر در تحویل"}, render.Options{ViewID: "abc"}, true)

	require.Len(t, h.Issues, 2)
	assert.Equal(t, "/views/abc?issue="+url.QueryEscape(rec.NegativeTopics[0]), h.Issues[0].Href)
	assert.False(t, h.Issues[0].Active)
	assert.True(t, h.Issues[1].Active)
	assert.Equal(t, "70", h.PositivePercentage)
	assert.Equal(t, "20", h.NegativePercentage)
}

func TestBuildAspects(t *testing.T) {
	aspects := render.BuildAspects(map[string]float64{
		"service":  1,
		"taste":    0,
		"delivery": 0.456,
		"ambience": 0.5,
		"parking":  1.3,
	}, nil)

	keys := make([]string, 0, len(aspects.Rows))
	for _, row := range aspects.Rows {
		keys = append(keys, row.Key)
	}
	assert.Equal(t, []string{"taste", "delivery", "service", "ambience", "parking"}, keys)

	assert.Equal(t, "طعم", aspects.Rows[0].Label)
	assert.Equal(t, 0, aspects.Rows[0].Percent)
	assert.Equal(t, 46, aspects.Rows[1].Percent)
	assert.Equal(t, 100, aspects.Rows[2].Percent)
	assert.Equal(t, "ambience", aspects.Rows[3].Label, "unknown keys fall back to the raw key")
	assert.Equal(t, 130, aspects.Rows[4].Percent)
	assert.Equal(t, 100, aspects.Rows[4].Width())
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, render.Percent(0))
	assert.Equal(t, 100, render.Percent(1))
	assert.Equal(t, 85, render.Percent(0.85))
	assert.Equal(t, 46, render.Percent(0.456))
}

func TestBuildHealthGauge(t *testing.T) {
	tests := []struct {
		name  string
		score int
		dash  float64
	}{
		{name: "zero", score: 0, dash: 0},
		{name: "half", score: 50, dash: 125.6},
		{name: "full", score: 100, dash: 251.2},
		{name: "above_range", score: 140, dash: 251.2},
		{name: "below_range", score: -10, dash: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			g := render.BuildHealthGauge(testCase.score)
			assert.InDelta(t, testCase.dash, g.Dash, 1e-9)
			assert.Equal(t, render.GaugeCircumference, g.Circumference)
			assert.Equal(t, testCase.score, g.Score)
		})
	}

	assert.Equal(t, "0 251.2", render.BuildHealthGauge(0).DashArray())
	assert.Equal(t, "251.2 251.2", render.BuildHealthGauge(100).DashArray())
}

func TestCompose_EmptyAlertsHiddenInEveryVariant(t *testing.T) {
	rec := detailRecord(t)
	rec.Alerts = nil

	for _, variant := range []domain.Variant{domain.VariantDetail, domain.VariantDish, domain.VariantDashboard} {
		t.Run(string(variant), func(t *testing.T) {
			page := render.Compose(variant, rec, filter.State{}, render.Options{ViewID: "v"})
			assert.Empty(t, blocksOf[render.Alerts](page.Blocks))
		})
	}

	page := render.Compose(domain.VariantDetail, detailRecord(t), filter.State{}, render.Options{ViewID: "v"})
	assert.Len(t, blocksOf[render.Alerts](page.Blocks), 1)
}

func TestCompose_BlockOrder(t *testing.T) {
	rec := detailRecord(t)
	rec.TrendDeltas = []domain.TrendDelta{{Key: "weekend_delay", Value: "+3%", Direction: "up"}}
	rec.RootCauses = []domain.RootCause{{Text: "پیک", Confidence: 0.5}}
	rec.Recommendations = []string{"ظرف عایق"}
	rec.Benchmark = "بالاتر از میانگین"

	tests := []struct {
		variant  domain.Variant
		expected []string
	}{
		{
			variant:  domain.VariantDetail,
			expected: []string{"header", "summary", "highlights", "aspects", "row", "stats", "reviews"},
		},
		{
			variant:  domain.VariantDish,
			expected: []string{"header", "summary", "highlights", "trends", "causes", "recommendations", "benchmark", "reviews"},
		},
		{
			variant:  domain.VariantDashboard,
			expected: []string{"header", "summary", "highlights", "stats", "aspects", "chart", "chart", "row", "reviews"},
		},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.variant), func(t *testing.T) {
			page := render.Compose(testCase.variant, rec, filter.State{}, render.Options{ViewID: "v"})
			assert.Equal(t, testCase.variant, page.Variant)
			assert.Equal(t, testCase.expected, templateNames(page.Blocks))
		})
	}
}

func TestCompose_EmptyRecordShowsNotFound(t *testing.T) {
	page := render.Compose(domain.VariantDetail, &domain.RestaurantRecord{}, filter.State{}, render.Options{})
	require.Len(t, page.Blocks, 1)
	assert.Equal(t, render.Message{Text: render.NotFoundText, Tone: "muted"}, page.Blocks[0])

	page = render.Compose(domain.VariantDetail, nil, filter.State{}, render.Options{})
	assert.Equal(t, render.NotFoundText, page.Title)
}

func TestCompose_FilteredReviews(t *testing.T) {
	rec := detailRecord(t)
	page := render.Compose(domain.VariantDetail, rec, filter.State{Issue: "غذا سرد رسید"}, render.Options{ViewID: "v1"})

	reviews := blocksOf[render.Reviews](page.Blocks)
	require.Len(t, reviews, 1)
	require.Len(t, reviews[0].Items, 1)
	assert.Equal(t, "غذا سرد بود", reviews[0].Items[0].Text)
	assert.Equal(t, "2024/03/01", reviews[0].Items[0].Date)
	assert.Equal(t, []bool{true, true, false, false, false}, reviews[0].Items[0].Stars)
	assert.Equal(t, "غذا سرد رسید", reviews[0].ActiveIssue)
	assert.Equal(t, "/views/v1?issue=", reviews[0].ClearHref)
}

func TestPrepareWordCloud(t *testing.T) {
	entries := render.PrepareWordCloud([]domain.WordCount{{Word: "پیتزا", Count: 3}, {Word: "پنیر", Count: 1}})
	assert.Equal(t, []render.WordCloudEntry{{Text: "پیتزا", Size: 6}, {Text: "پنیر", Size: 2}}, entries)

	chart := render.BuildWordCloud(&domain.RestaurantRecord{ID: 9})
	assert.Equal(t, "word-cloud-9", chart.MountID)
	assert.Equal(t, "[]", chart.Data)
}

func TestBuildListing(t *testing.T) {
	empty := render.BuildListing(nil)
	assert.Equal(t, render.Message{Text: render.EmptyListingText, Tone: "muted"}, empty)

	listing, ok := render.BuildListing([]domain.ListingSummary{{ID: 4, Name: "کافه", Rating: 4.5}}).(render.Listing)
	require.True(t, ok)
	require.Len(t, listing.Cards, 1)
	assert.Equal(t, "/restaurant/4", listing.Cards[0].Href)
	assert.Equal(t, "https://picsum.photos/seed/4/400/250", listing.Cards[0].ImageURL)
	assert.Equal(t, "4.5", listing.Cards[0].Rating)
}

func TestRenderer_Render(t *testing.T) {
	renderer, err := render.NewRenderer()
	require.NoError(t, err)

	rec := detailRecord(t)
	rec.AISummary = `<script>alert("x")</script>`

	var buf bytes.Buffer
	page := render.Compose(domain.VariantDetail, rec, filter.State{Issue: "غذا سرد رسید"}, render.Options{ViewID: "v1", QRCodeURL: "/restaurant/1/qrcode"})
	require.NoError(t, renderer.Render(&buf, page))
	html := buf.String()

	assert.Contains(t, html, `dir="rtl"`)
	assert.Contains(t, html, "رستوران سنتی شرزه")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "طعم")
	assert.Contains(t, html, "width: 85%")
	assert.Contains(t, html, "فیلتر شده بر اساس:")
	assert.Contains(t, html, "پاک کردن فیلتر")
	assert.Contains(t, html, "افزایش شکایت از تاخیر")
	assert.Contains(t, html, fmt.Sprintf(`stroke-dasharray="%s"`, render.BuildHealthGauge(78).DashArray()))
	assert.NotContains(t, html, "عالی بود", "filtered out review is not drawn")
}

func TestRenderer_RenderDashboardCharts(t *testing.T) {
	renderer, err := render.NewRenderer()
	require.NoError(t, err)

	rec := detailRecord(t)
	rec.WordCloud = []domain.WordCount{{Word: "کباب", Count: 2}}

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, render.Compose(domain.VariantDashboard, rec, filter.State{}, render.Options{ViewID: "v"})))
	html := buf.String()

	assert.Contains(t, html, `id="trend-chart-1"`)
	assert.Contains(t, html, `id="word-cloud-1"`)
	assert.Contains(t, html, "کباب")
	assert.True(t, strings.Contains(html, "&#34;size&#34;:4"), "word cloud data is embedded escaped")
}

func TestRenderer_RenderMessageAndListing(t *testing.T) {
	renderer, err := render.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, render.MessagePage(domain.VariantDetail, render.FailureText, "error")))
	assert.Contains(t, buf.String(), render.FailureText)

	buf.Reset()
	require.NoError(t, renderer.Render(&buf, render.ListingPage([]domain.ListingSummary{{ID: 2, Name: "سفره‌خانه"}})))
	assert.Contains(t, buf.String(), `href="/restaurant/2"`)
	assert.Contains(t, buf.String(), "سفره‌خانه")
}

func TestCompose_DetailWithoutCommentsKeepsReviews(t *testing.T) {
	renderer, err := render.NewRenderer()
	require.NoError(t, err)

	rec := detailRecord(t)
	rec.Comments = nil
	page := render.Compose(domain.VariantDetail, rec, filter.State{Issue: "غذا سرد رسید"}, render.Options{ViewID: "v"})

	reviews := blocksOf[render.Reviews](page.Blocks)
	require.Len(t, reviews, 1)
	assert.Equal(t, "غذا سرد رسید", reviews[0].ActiveIssue)
	assert.Empty(t, reviews[0].Items)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, page))
	assert.Contains(t, buf.String(), render.NoneFoundText)
	assert.Contains(t, buf.String(), "پاک کردن فیلتر")
}

func TestRenderer_HeaderImagesSizedApart(t *testing.T) {
	renderer, err := render.NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	page := render.Compose(domain.VariantDetail, detailRecord(t), filter.State{}, render.Options{ViewID: "v", QRCodeURL: "/restaurant/1/qrcode"})
	require.NoError(t, renderer.Render(&buf, page))
	html := buf.String()

	assert.Contains(t, html, `<img class="cover"`)
	assert.Contains(t, html, `<img class="qrcode" src="/restaurant/1/qrcode"`)
	assert.Contains(t, html, ".header img.qrcode { width: 96px; height: 96px; }")
	assert.NotContains(t, html, ".header img {", "full-width rule must not reach the QR code")
}
