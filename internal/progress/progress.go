// Package progress prints a simple progress bar to stderr for long batch
// runs. Disabled indicators are no-ops, so callers never branch.
package progress

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Indicator tracks one operation's progress.
type Indicator struct {
	enabled    bool
	message    string
	total      int
	current    int
	startTime  time.Time
	lastUpdate time.Time
}

// NewIndicator creates an indicator for an operation over total items.
func NewIndicator(message string, total int, enabled bool) *Indicator {
	return &Indicator{enabled: enabled, message: message, total: total}
}

// Start begins the indication.
func (p *Indicator) Start() {
	if !p.enabled {
		return
	}
	p.startTime = time.Now()
	p.lastUpdate = p.startTime
	fmt.Fprintf(os.Stderr, "%s...\n", p.message)
}

// Update records progress and redraws at most every 100ms.
func (p *Indicator) Update(current int) {
	if !p.enabled {
		return
	}
	p.current = current

	now := time.Now()
	if now.Sub(p.lastUpdate) < 100*time.Millisecond && current < p.total {
		return
	}
	p.lastUpdate = now

	if p.total <= 0 {
		fmt.Fprintf(os.Stderr, "\r%s (%d processed)", p.message, current)
		return
	}

	pct := float64(current) / float64(p.total) * 100
	fmt.Fprintf(os.Stderr, "\r%s [%s] %d/%d (%.1f%%)",
		p.message, bar(pct), current, p.total, pct)
}

// Finish completes the indication with the elapsed time.
func (p *Indicator) Finish() {
	if !p.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s done (%d items, %s)\n",
		p.message, p.current, time.Since(p.startTime).Round(time.Millisecond))
}

func bar(pct float64) string {
	const width = 20
	filled := int(pct / 100 * width)
	if filled > width {
		filled = width
	}
	return strings.Repeat("=", filled) + strings.Repeat(" ", width-filled)
}
