package timing

import (
	"fmt"
	"time"
)

// FormatClock formats d as MM:SS.hh, or HH:MM:SS.hh once it reaches an hour.
func FormatClock(d time.Duration) string {
	h, m, s, hundredths := split(d)
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%02d", h, m, s, hundredths)
	}
	return fmt.Sprintf("%02d:%02d.%02d", m, s, hundredths)
}

// FormatConcise formats d as HH:MM:SS.
func FormatConcise(d time.Duration) string {
	h, m, s, _ := split(d)
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// FormatDetailed formats d as HH:MM:SS.hh.
func FormatDetailed(d time.Duration) string {
	h, m, s, hundredths := split(d)
	return fmt.Sprintf("%02d:%02d:%02d.%02d", h, m, s, hundredths)
}

// FormatStat formats an optional statistic as MM:SS, with minutes not wrapping at the hour.
// A missing statistic formats as 00:00.
func FormatStat(d time.Duration, ok bool) string {
	if !ok {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// split truncates (never rounds) each component.
func split(d time.Duration) (h, m, s, hundredths int64) {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h = total / 3600
	m = (total % 3600) / 60
	s = total % 60
	hundredths = int64(d%time.Second) / int64(10*time.Millisecond)
	return h, m, s, hundredths
}
