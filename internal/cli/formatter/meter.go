package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/resisync/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderMeter renders a usage bar like [████░░░░] 45/90. Unlike a
// progress bar, high usage is bad: the bar turns yellow past two
// thirds and red at or over the limit.
func RenderMeter(used, limit, width int) string {
	if limit <= 0 {
		limit = 1
	}
	if width < 2 {
		width = 2
	}

	pct := float64(used) / float64(limit)
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	style := StyleGreen
	if pct >= 1 {
		style = StyleRed
	} else if pct > 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), used, limit)
}

// SchengenMeter renders the 90-day allowance bar with its label.
func SchengenMeter(used, width int) string {
	remaining := domain.SchengenLimitDays - used
	if remaining < 0 {
		remaining = 0
	}
	label := Dim(fmt.Sprintf("%d days left", remaining))
	return fmt.Sprintf("%s %s  %s",
		Bold("Schengen 90/180"),
		RenderMeter(used, domain.SchengenLimitDays, width),
		label)
}
