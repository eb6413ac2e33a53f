package models

import (
	"fmt"
	"math"
	"time"
)

// DisplayTemp formats a stored Celsius temperature for display, rounded to
// the nearest degree. Fahrenheit is a derived view-level value; the stored
// temperature is always Celsius.
func DisplayTemp(celsius float64, useCelsius bool) string {
	if useCelsius {
		return fmt.Sprintf("%d°C", int(math.Round(celsius)))
	}
	return fmt.Sprintf("%d°F", int(math.Round(celsius*9/5+32)))
}

// FormatUpdated renders a fetch timestamp for card footers.
func FormatUpdated(t time.Time) string {
	return t.Format("3:04 PM")
}
