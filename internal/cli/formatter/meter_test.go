package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMeterBounds(t *testing.T) {
	out := RenderMeter(0, 90, 10)
	assert.Contains(t, out, "0/90")
	assert.Equal(t, 10, strings.Count(out, emptyBlock))
	assert.Zero(t, strings.Count(out, filledBlock))

	out = RenderMeter(90, 90, 10)
	assert.Contains(t, out, "90/90")
	assert.Equal(t, 10, strings.Count(out, filledBlock))

	// Overstay never overflows the bar width.
	out = RenderMeter(120, 90, 10)
	assert.Contains(t, out, "120/90")
	assert.Equal(t, 10, strings.Count(out, filledBlock))
}

func TestRenderMeterPartialFill(t *testing.T) {
	out := RenderMeter(45, 90, 10)
	assert.Equal(t, 5, strings.Count(out, filledBlock))
	assert.Equal(t, 5, strings.Count(out, emptyBlock))
}

func TestSchengenMeterLabel(t *testing.T) {
	out := SchengenMeter(30, 10)
	assert.Contains(t, out, "Schengen 90/180")
	assert.Contains(t, out, "60 days left")

	// Remaining is clamped at zero on overstay.
	out = SchengenMeter(100, 10)
	assert.Contains(t, out, "0 days left")
}
