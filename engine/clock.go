package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// All scheduling arithmetic runs on integer minutes since midnight; HH:MM
// strings exist only at the boundary.

// ParseClock converts an "HH:MM" string to minutes since midnight. Malformed
// fields parse as zero; validation of config strings happens upstream.
func ParseClock(s string) int {
	parts := strings.SplitN(s, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours*60 + minutes
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
