package valueobjects

import (
	"fmt"
	"strconv"
	"strings"
)

// OperatingHours is a same-day opening window in 24h "HH:MM" form.
type OperatingHours struct {
	start int
	end   int
}

func NewOperatingHours(start, end string) (OperatingHours, error) {
	s, err := parseClock(start)
	if err != nil {
		return OperatingHours{}, fmt.Errorf("invalid start time: %w", err)
	}
	e, err := parseClock(end)
	if err != nil {
		return OperatingHours{}, fmt.Errorf("invalid end time: %w", err)
	}
	if e <= s {
		return OperatingHours{}, fmt.Errorf("end time %s must be after start time %s", end, start)
	}
	return OperatingHours{start: s, end: e}, nil
}

func (h OperatingHours) Start() string { return formatClock(h.start) }
func (h OperatingHours) End() string   { return formatClock(h.end) }

func (h OperatingHours) IsZero() bool {
	return h.start == 0 && h.end == 0
}

// Contains reports whether the minute-of-day hh:mm falls inside the window.
func (h OperatingHours) Contains(hour, minute int) bool {
	m := hour*60 + minute
	return m >= h.start && m < h.end
}

func (h OperatingHours) String() string {
	return h.Start() + "-" + h.End()
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%q is not HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%q has an invalid hour", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%q has an invalid minute", s)
	}
	return h*60 + m, nil
}

func formatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
