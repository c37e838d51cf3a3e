package model

// Tier is the warning level applied to the remaining figure.
type Tier int

const (
	TierSuccess Tier = iota
	TierWarning
	TierDanger
)

func (t Tier) String() string {
	switch t {
	case TierWarning:
		return "warning"
	case TierDanger:
		return "danger"
	default:
		return "success"
	}
}

// ClassifyTier returns danger below a quarter of the budget, warning below half,
// success otherwise.
func ClassifyTier(t Totals) Tier {
	switch {
	case t.Remaining < t.Total/4:
		return TierDanger
	case t.Remaining < t.Total/2:
		return TierWarning
	default:
		return TierSuccess
	}
}

// AlertKind selects the banner styling.
type AlertKind int

const (
	AlertSuccess AlertKind = iota
	AlertError
)

func (k AlertKind) String() string {
	if k == AlertError {
		return "error"
	}
	return "success"
}

// Alert is a transient, self-dismissing status banner.
type Alert struct {
	ID      int
	Message string
	Kind    AlertKind
}
