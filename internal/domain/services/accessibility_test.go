package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAccessibilityDefaults(t *testing.T) {
	state := ResolveAccessibility(A11yPreferences{}, "", "")

	assert.Equal(t, ContrastModeDefault, state.ContrastMode)
	assert.Equal(t, TextIncreaseDefault, state.TextIncreaseAmount)
	assert.False(t, state.IsHighContrastMode)
	assert.InDelta(t, 0.125, state.TextBaseUnit, 1e-9)
	assert.InDelta(t, 0.125, state.TextLineBaseUnit, 1e-9)
	assert.InDelta(t, 0.125, state.SpacingBaseUnit, 1e-9)
}

func TestResolveAccessibilityScalingUnits(t *testing.T) {
	tests := []struct {
		amount   string
		text     float64
		textLine float64
		spacing  float64
	}{
		{TextIncrease50, 0.1875, 0.175, 0.075},
		{TextIncrease100, 0.25, 0.225, 0.075},
		{TextIncrease200, 0.375, 0.325, 0.075},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			state := ResolveAccessibility(A11yPreferences{TextIncreaseAmount: tt.amount}, "", "")

			assert.InDelta(t, tt.text, state.TextBaseUnit, 1e-9)
			assert.InDelta(t, tt.textLine, state.TextLineBaseUnit, 1e-9)
			assert.InDelta(t, tt.spacing, state.SpacingBaseUnit, 1e-9)
		})
	}
}

func TestResolveAccessibilityQueryWinsOverStored(t *testing.T) {
	stored := A11yPreferences{
		ContrastMode:       ContrastModeDefault,
		TextIncreaseAmount: TextIncrease50,
	}

	state := ResolveAccessibility(stored, TextIncrease200, ContrastModeHigh)

	assert.Equal(t, ContrastModeHigh, state.ContrastMode)
	assert.True(t, state.IsHighContrastMode)
	assert.Equal(t, TextIncrease200, state.TextIncreaseAmount)
	assert.InDelta(t, 2, state.IncreaseAmount, 1e-9)
}

func TestResolveAccessibilityStoredSurvivesEmptyQuery(t *testing.T) {
	stored := A11yPreferences{
		ContrastMode:       ContrastModeHigh,
		TextIncreaseAmount: TextIncrease100,
	}

	state := ResolveAccessibility(stored, "", "")

	assert.Equal(t, ContrastModeHigh, state.ContrastMode)
	assert.Equal(t, TextIncrease100, state.TextIncreaseAmount)
}

func TestResolveAccessibilityUnknownAmountScalesByZero(t *testing.T) {
	state := ResolveAccessibility(A11yPreferences{TextIncreaseAmount: "1000"}, "", "")

	assert.InDelta(t, 0, state.IncreaseAmount, 1e-9)
	assert.InDelta(t, 0.125, state.TextBaseUnit, 1e-9)
}

func TestPreferencesRoundTrip(t *testing.T) {
	state := ResolveAccessibility(A11yPreferences{}, TextIncrease50, ContrastModeHigh)

	prefs := state.Preferences()
	assert.Equal(t, ContrastModeHigh, prefs.ContrastMode)
	assert.Equal(t, TextIncrease50, prefs.TextIncreaseAmount)

	// Resolving again from the persisted payload is stable.
	again := ResolveAccessibility(prefs, "", "")
	assert.Equal(t, state, again)
}
