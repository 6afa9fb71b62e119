package domain

// Variant selects one of the page layouts. All variants bind the same record
// semantics and differ only in block order and styling.
type Variant string

const (
	VariantDetail    Variant = "detail"
	VariantDish      Variant = "dish"
	VariantDashboard Variant = "dashboard"
)

// Shape records which upstream JSON layout a record was decoded from.
type Shape int

const (
	ShapeDetail Shape = iota
	ShapeDashboard
	ShapeDish
)

// ParseVariant returns the named variant, or false for anything unknown.
// An empty name is valid and means "pick from the record shape".
func ParseVariant(name string) (Variant, bool) {
	switch Variant(name) {
	case "":
		return "", true
	case VariantDetail, VariantDish, VariantDashboard:
		return Variant(name), true
	}
	return "", false
}

func (s Shape) DefaultVariant() Variant {
	switch s {
	case ShapeDish:
		return VariantDish
	case ShapeDashboard:
		return VariantDashboard
	default:
		return VariantDetail
	}
}
