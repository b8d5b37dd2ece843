package engine

// Confidence grades how decisively the primary archetype beat the secondary.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// Margin thresholds.
const (
	HighMinMargin   = 3
	MediumMinMargin = 2
	// HybridMaxMargin is the widest margin that still gets a hybrid suggestion.
	HybridMaxMargin = 1
)

// ConfidenceFor maps a primary-secondary margin to a confidence level:
// High at 3 or more, Medium at exactly 2, Low otherwise.
func ConfidenceFor(margin int) Confidence {
	switch {
	case margin >= HighMinMargin:
		return ConfidenceHigh
	case margin == MediumMinMargin:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
