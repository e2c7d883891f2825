package helpers

import (
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for calendar dates (attendance, fees, exams).
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returning the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a calendar date in DateLayout format.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	return t, nil
}

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeOfDay reports whether value is a zero-padded HH:MM time-of-day
// string, used for class batch and timetable slot boundaries. Zero padding
// keeps the strings ordered, so boundaries compare correctly as text.
func ValidTimeOfDay(value string) bool {
	return timeOfDayPattern.MatchString(value)
}
