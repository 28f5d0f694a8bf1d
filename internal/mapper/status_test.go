package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridirondash/gridiron/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestNormalizeStatus_SynonymTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want model.GameStatus
	}{
		{"pre", model.StatusPre},
		{"STATUS_SCHEDULED", model.StatusPre},
		{"scheduled", model.StatusPre},
		{"in", model.StatusIn},
		{"in progress", model.StatusIn},
		{"live", model.StatusIn},
		{"halftime", model.StatusHalftime},
		{"End of 2nd Quarter", model.StatusHalftime},
		{"post", model.StatusPost},
		{"postgame", model.StatusPost},
		{"final", model.StatusFinal},
		{"STATUS_FINAL", model.StatusFinal},
		{"completed", model.StatusFinal},
		{"end of game", model.StatusFinal},
		{"delayed", model.StatusDelayed},
		{"postponed", model.StatusDelayed},
		{"canceled", model.StatusDelayed},
		{"suspended", model.StatusDelayed},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeStatus(tc.raw, nil), "raw=%q", tc.raw)
	}
}

func TestNormalizeStatus_CompletionFallback(t *testing.T) {
	t.Parallel()

	// Unrecognized strings defer to the completion flag.
	assert.Equal(t, model.StatusFinal, NormalizeStatus("weird value", boolPtr(true)))
	assert.Equal(t, model.StatusPre, NormalizeStatus("weird value", boolPtr(false)))
	assert.Equal(t, model.StatusPre, NormalizeStatus("weird value", nil))
	assert.Equal(t, model.StatusFinal, NormalizeStatus("", boolPtr(true)))
	assert.Equal(t, model.StatusPre, NormalizeStatus("", nil))
}

func TestNormalizeStatus_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	// "final review" is not the token "final"; it falls through to the
	// completion flag rather than matching on substring.
	assert.Equal(t, model.StatusPre, NormalizeStatus("final review", nil))
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Scheduled", StatusLabel(model.StatusPre))
	assert.Equal(t, "In Progress", StatusLabel(model.StatusIn))
	assert.Equal(t, "Halftime", StatusLabel(model.StatusHalftime))
	assert.Equal(t, "Final", StatusLabel(model.StatusFinal))
	assert.Equal(t, "Delayed", StatusLabel(model.StatusDelayed))
	assert.Equal(t, "Scheduled", StatusLabel(model.GameStatus("garbage")))
}

func TestSplitDash(t *testing.T) {
	t.Parallel()

	made, att, ok := splitDash("5-45")
	assert.True(t, ok)
	assert.Equal(t, 5, made)
	assert.Equal(t, 45, att)

	_, _, ok = splitDash("5-45-3")
	assert.False(t, ok)
	_, _, ok = splitDash("5/45")
	assert.False(t, ok)
	_, _, ok = splitDash("five-45")
	assert.False(t, ok)
}

func TestAsInt_RejectsBooleans(t *testing.T) {
	t.Parallel()

	_, ok := asInt(true)
	assert.False(t, ok)

	n, ok := asInt(float64(27))
	assert.True(t, ok)
	assert.Equal(t, 27, n)

	n, ok = asInt(" 14 ")
	assert.True(t, ok)
	assert.Equal(t, 14, n)
}

func TestStringify_NumericIDs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "401547417", stringify(float64(401547417)))
	assert.Equal(t, "12", stringify("12"))
	assert.Equal(t, "", stringify(nil))
}
