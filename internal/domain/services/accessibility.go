// Package services provides pure domain services: preference resolution,
// color derivation and link classification. Everything here is deterministic
// and free of I/O.
package services

import "math"

// Accessibility preference values persisted in the a11y cookie.
const (
	ContrastModeDefault = "default"
	ContrastModeHigh    = "high"

	TextIncreaseDefault = "default"
	TextIncrease50      = "50"
	TextIncrease100     = "100"
	TextIncrease200     = "200"
)

// A11yPreferences is the a11y cookie payload.
type A11yPreferences struct {
	ContrastMode       string `json:"contrastMode"`
	TextIncreaseAmount string `json:"textIncreaseAmount"`
}

// A11yState carries the resolved preferences plus the derived scaling units
// consumed by the renderer. The resolved preferences are always persisted
// back to the cookie, changed or not.
type A11yState struct {
	ContrastMode       string
	TextIncreaseAmount string
	IncreaseAmount     float64
	TextBaseUnit       float64
	TextLineBaseUnit   float64
	SpacingBaseUnit    float64
	IsHighContrastMode bool
}

// Preferences returns the cookie payload to persist for this state.
func (s A11yState) Preferences() A11yPreferences {
	return A11yPreferences{
		ContrastMode:       s.ContrastMode,
		TextIncreaseAmount: s.TextIncreaseAmount,
	}
}

// increaseAmountFor maps the stored text increase value to its numeric
// scaling amount. Unknown values (including "default") scale by zero.
func increaseAmountFor(textIncreaseAmount string) float64 {
	switch textIncreaseAmount {
	case TextIncrease50:
		return 0.5
	case TextIncrease100:
		return 1
	case TextIncrease200:
		return 2
	default:
		return 0
	}
}

// ResolveAccessibility computes the effective accessibility state from the
// stored cookie values and the request's query overrides. A non-empty query
// value wins over the cookie value.
func ResolveAccessibility(stored A11yPreferences, queryTextIncrease, queryContrastMode string) A11yState {
	contrastMode := stored.ContrastMode
	if queryContrastMode != "" {
		contrastMode = queryContrastMode
	}
	if contrastMode == "" {
		contrastMode = ContrastModeDefault
	}

	textIncreaseAmount := stored.TextIncreaseAmount
	if queryTextIncrease != "" {
		textIncreaseAmount = queryTextIncrease
	}
	if textIncreaseAmount == "" {
		textIncreaseAmount = TextIncreaseDefault
	}

	amount := increaseAmountFor(textIncreaseAmount)

	spacingDivisor := 1.0
	if amount != 0 {
		spacingDivisor = 20 * amount
	}

	return A11yState{
		ContrastMode:       contrastMode,
		TextIncreaseAmount: textIncreaseAmount,
		IncreaseAmount:     amount,
		TextBaseUnit:       0.125 + 0.125*amount,
		TextLineBaseUnit:   0.125 + amount/10,
		SpacingBaseUnit:    math.Abs(0.125 - amount/spacingDivisor),
		IsHighContrastMode: contrastMode == ContrastModeHigh,
	}
}
