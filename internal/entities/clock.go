package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a 24-hour "HH:MM" string into hour and minute.
// It enforces 0 <= HH < 24 and 0 <= MM < 60.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidSchedule, s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: time %q has bad hour", ErrInvalidSchedule, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: time %q has bad minute", ErrInvalidSchedule, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: time %q out of range", ErrInvalidSchedule, s)
	}

	return hour, minute, nil
}

// ValidateTimezone checks that name is a known IANA zone and returns its location.
func ValidateTimezone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidSchedule, name)
	}
	return loc, nil
}
