package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DefaultTimezone = "GMT+0"

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// parseOffset parses a GMT+H:MM timezone into a fixed zone
func parseOffset(timezone string) *time.Location {
	if !strings.HasPrefix(timezone, "GMT") || len(timezone) < 5 {
		return nil
	}

	sign := 1
	switch timezone[3] {
	case '+':
	case '-':
		sign = -1
	default:
		return nil
	}

	parts := strings.Split(timezone[4:], ":")
	if len(parts) != 2 {
		return nil
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 14 {
		return nil
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minutes < 0 || minutes > 59 {
		return nil
	}

	return time.FixedZone(timezone, sign*(hours*3600+minutes*60))
}

// GetLocation returns a location of a GMT-X or GMT-X:MM format timezone.
// It returns nil for an unknown timezone.
func GetLocation(timezone string) *time.Location {
	timezone = strings.ToUpper(timezone)
	if tz, ok := locations[timezone]; ok {
		return tz
	}
	return parseOffset(timezone)
}

// LocationOrDefault falls back to GMT+0 for an unknown timezone
func LocationOrDefault(timezone string) *time.Location {
	if tz := GetLocation(timezone); tz != nil {
		return tz
	}
	return locations[DefaultTimezone]
}
