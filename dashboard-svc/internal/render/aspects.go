package render

import (
	"math"
	"sort"
)

// DefaultAspectOrder is the display order of the six scored aspects.
var DefaultAspectOrder = []string{"taste", "delivery", "packaging", "price", "portion", "service"}

var aspectLabels = map[string]string{
	"taste":     "طعم",
	"delivery":  "ارسال",
	"packaging": "بسته‌بندی",
	"price":     "قیمت",
	"portion":   "حجم",
	"service":   "خدمات",
}

// AspectLabel returns the Persian label of an aspect key, or the key itself
// when no translation exists.
func AspectLabel(key string) string {
	if label, ok := aspectLabels[key]; ok {
		return label
	}
	return key
}

// Percent converts a [0,1] score to a whole percentage.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}

// barWidth is the progress fill in percent, kept inside the track.
func barWidth(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// BuildAspects renders the aspects present in scores: first those named in
// order, then any remaining keys in lexical order.
func BuildAspects(scores map[string]float64, order []string) Aspects {
	if order == nil {
		order = DefaultAspectOrder
	}
	seen := make(map[string]bool, len(order))
	var rows []AspectRow
	for _, key := range order {
		score, ok := scores[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, aspectRow(key, score))
	}

	var extra []string
	for key := range scores {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		rows = append(rows, aspectRow(key, scores[key]))
	}
	return Aspects{Rows: rows}
}

func aspectRow(key string, score float64) AspectRow {
	return AspectRow{Key: key, Label: AspectLabel(key), Percent: Percent(score)}
}

// Width is the bar fill width used by the template.
func (r AspectRow) Width() int {
	return barWidth(r.Percent)
}

func (r CauseRow) Width() int {
	return barWidth(r.Percent)
}
