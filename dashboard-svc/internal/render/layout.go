package render

import (
	"review-insights/dashboard-svc/internal/domain"
	"review-insights/dashboard-svc/internal/filter"
)

// Compose builds the view tree of one variant. It is a pure function of its
// inputs: the same record, filter state and options always yield the same page.
func Compose(variant domain.Variant, rec *domain.RestaurantRecord, state filter.State, opts Options) Page {
	if rec.IsEmpty() {
		return MessagePage(variant, NotFoundText, "muted")
	}
	if variant == "" {
		variant = rec.Shape.DefaultVariant()
	}

	var blocks []Block
	switch variant {
	case domain.VariantDish:
		blocks = dishBlocks(rec, state, opts)
	case domain.VariantDashboard:
		blocks = dashboardBlocks(rec, state, opts)
	default:
		variant = domain.VariantDetail
		blocks = detailBlocks(rec, state, opts)
	}
	return Page{Title: rec.Name, Variant: variant, Blocks: blocks}
}

// MessagePage is a page holding nothing but a status line.
func MessagePage(variant domain.Variant, text, tone string) Page {
	return Page{
		Title:   text,
		Variant: variant,
		Blocks:  []Block{Message{Text: text, Tone: tone}},
	}
}

// ListingPage is the root page with one card per restaurant.
func ListingPage(summaries []domain.ListingSummary) Page {
	return Page{
		Title:  "رستوران‌ها",
		Blocks: []Block{BuildListing(summaries)},
	}
}

func detailBlocks(rec *domain.RestaurantRecord, state filter.State, opts Options) []Block {
	return []Block{
		BuildHeader(rec, opts),
		BuildSummary(rec, false),
		BuildHighlights(rec, state, opts, true),
		BuildAspects(rec.Aspects, opts.AspectOrder),
		alertsAndHealth(rec),
		BuildStats(rec, false),
		BuildReviews(rec, state, opts, "نظرات کاربران"),
	}
}

func dashboardBlocks(rec *domain.RestaurantRecord, state filter.State, opts Options) []Block {
	return []Block{
		BuildHeader(rec, opts),
		BuildSummary(rec, true),
		BuildHighlights(rec, state, opts, false),
		BuildStats(rec, true),
		BuildAspects(rec.Aspects, opts.AspectOrder),
		BuildTrendChart(rec),
		BuildWordCloud(rec),
		alertsAndHealth(rec),
		BuildReviews(rec, state, opts, "آخرین نظرات"),
	}
}

func dishBlocks(rec *domain.RestaurantRecord, state filter.State, opts Options) []Block {
	blocks := []Block{
		BuildHeader(rec, opts),
		BuildSummary(rec, false),
		BuildHighlights(rec, state, opts, false),
	}
	if len(rec.TrendDeltas) > 0 {
		blocks = append(blocks, BuildTrendDeltas(rec.TrendDeltas))
	}
	if len(rec.RootCauses) > 0 {
		blocks = append(blocks, BuildRootCauses(rec.RootCauses))
	}
	if len(rec.Recommendations) > 0 {
		blocks = append(blocks, Recommendations{Items: rec.Recommendations})
	}
	if rec.Benchmark != "" {
		blocks = append(blocks, Benchmark{Text: rec.Benchmark})
	}
	return append(blocks, BuildReviews(rec, state, opts, "نظرات مشتریان"))
}

func alertsAndHealth(rec *domain.RestaurantRecord) Row {
	var row Row
	if alerts, ok := BuildAlerts(rec); ok {
		row.Children = append(row.Children, alerts)
	}
	row.Children = append(row.Children, BuildHealthGauge(rec.HealthScore))
	return row
}
