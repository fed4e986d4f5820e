package clocktable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/henderiw/wrange/pkg/wrange"
)

// MinutesPerDay is the number of minutes in a day; minute values run from 0
// to MinutesPerDay-1.
const MinutesPerDay = 24 * 60

// Window is a daily time window from a start minute (included) to an end
// minute (excluded). A window whose end is before its start runs over
// midnight.
type Window struct {
	rng wrange.Wrange[uint16]
}

// NewWindow returns the window [start, end). end may be MinutesPerDay to run
// until midnight.
func NewWindow(start, end uint16) (Window, error) {
	if start >= MinutesPerDay {
		return Window{}, fmt.Errorf("start minute %d is not within a day", start)
	}
	if end > MinutesPerDay {
		return Window{}, fmt.Errorf("end minute %d is not within a day", end)
	}
	if start == end {
		return Window{}, fmt.Errorf("window %s-%s is empty", formatMinute(start), formatMinute(end))
	}
	return Window{rng: wrange.New(wrange.NewInclusive(start), wrange.NewExclusive(end))}, nil
}

// ParseWindow parses "hh:mm-hh:mm", e.g. "22:00-02:00". The end may be
// written as 24:00.
func ParseWindow(s string) (Window, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Window{}, fmt.Errorf("invalid window %q: expected hh:mm-hh:mm", s)
	}
	start, err := parseMinute(from)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window %q: %w", s, err)
	}
	if start == MinutesPerDay {
		return Window{}, fmt.Errorf("invalid window %q: a window cannot start at 24:00", s)
	}
	end, err := parseMinute(to)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window %q: %w", s, err)
	}
	return NewWindow(start, end)
}

func (w Window) Range() wrange.Wrange[uint16] { return w.rng }

// Contains reports whether the window is open at minute.
func (w Window) Contains(minute uint16) bool {
	return minute < MinutesPerDay && w.rng.Contains(minute)
}

func (w Window) String() string {
	b, ok := w.rng.Bounds()
	if !ok {
		return w.rng.String()
	}
	return formatMinute(b.Low.Value()) + "-" + formatMinute(b.High.Value())
}

// FormatRange renders a range of minutes with clock times, e.g.
// "[22:00,02:00)".
func FormatRange(w wrange.Wrange[uint16]) string {
	b, ok := w.Bounds()
	if !ok {
		return w.String()
	}
	open, closing := "(", ")"
	if b.Low.IsInclusive() {
		open = "["
	}
	if b.High.IsInclusive() {
		closing = "]"
	}
	return open + formatMinute(b.Low.Value()) + "," + formatMinute(b.High.Value()) + closing
}

func parseMinute(s string) (uint16, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("time %q is not hh:mm", s)
	}
	h, err := strconv.ParseUint(hh, 10, 8)
	if err != nil || h > 24 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.ParseUint(mm, 10, 8)
	if err != nil || m > 59 || len(mm) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	if h == 24 && m != 0 {
		return 0, fmt.Errorf("time %q is past midnight", s)
	}
	return uint16(h*60 + m), nil
}

func formatMinute(m uint16) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
