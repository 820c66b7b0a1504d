package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/bloom-classifier/internal/types"
)

func TestForLocale(t *testing.T) {
	en, ok := ForLocale("en")
	require.True(t, ok)
	assert.Equal(t, "en", en.Locale)

	id, ok := ForLocale("id")
	require.True(t, ok)
	assert.Equal(t, "id", id.Locale)

	_, ok = ForLocale("fr")
	assert.False(t, ok)
}

func TestLocales(t *testing.T) {
	assert.ElementsMatch(t, []string{"en", "id"}, Locales())
}

func TestWithTuning_DoesNotMutateOriginal(t *testing.T) {
	tuning := DefaultTuning()
	tuning.UncertainCutoff = 0.90

	custom := English.WithTuning(tuning)
	assert.Equal(t, 0.90, custom.tuning.UncertainCutoff)
	assert.Equal(t, 0.70, English.tuning.UncertainCutoff)
}

func TestWithTuning_ChangesUncertainDowngradeBehavior(t *testing.T) {
	text := "The committee reviewed the annual budget proposal carefully"
	pred := prediction(types.C5, 0.75)

	// At the default 0.70 cutoff a 0.75 prediction is confident enough
	kept := Adjust(text, pred, English)
	assert.Equal(t, ReasonMLKept, kept.AdjustmentReason)

	tuning := DefaultTuning()
	tuning.UncertainCutoff = 0.90
	downgraded := Adjust(text, pred, English.WithTuning(tuning))
	assert.Equal(t, ReasonUncertain, downgraded.AdjustmentReason)
	assert.Equal(t, types.C2, downgraded.Category)
}

func TestBoostConfidence(t *testing.T) {
	tuning := DefaultTuning()

	// Base only: low ML confidence, weak signal
	assert.InDelta(t, 0.89, boostConfidence(types.C4, 0.50, 1, 1, tuning), 1e-9)

	// High ML confidence adds 0.05
	assert.InDelta(t, 0.94, boostConfidence(types.C4, 0.80, 1, 1, tuning), 1e-9)

	// Two patterns add the strength bonus
	assert.InDelta(t, 0.92, boostConfidence(types.C4, 0.50, 2, 1, tuning), 1e-9)

	// Pattern plus two keywords adds the agreement bonus
	assert.InDelta(t, 0.93, boostConfidence(types.C4, 0.50, 1, 2, tuning), 1e-9)

	// Everything at once clamps at the maximum
	assert.InDelta(t, 0.98, boostConfidence(types.C6, 0.90, 3, 4, tuning), 1e-9)

	// Unknown category falls back to the generic base
	assert.InDelta(t, 0.85, boostConfidence(types.Category("C9"), 0.50, 1, 1, tuning), 1e-9)
}

func TestReasonCodes(t *testing.T) {
	assert.Equal(t, "force_c4_pattern", forceReason(types.C4))
	assert.Equal(t, "confirm_c2_boost", confirmReason(types.C2))
}
