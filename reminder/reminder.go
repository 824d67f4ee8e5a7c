package reminder

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/bitmark-inc/flo-api/schema"
)

const (
	HistoryWindow = 30 * 24 * time.Hour

	MinPatternReadings   = 5
	MinHoursSinceReading = 8
	HighPriorityAfter    = 2
	CatchAllAfter        = 5

	// hours since the last reading when a user never logged one
	noReadingHours = 999
)

// DefaultHours are used until a user has enough readings to learn from
var DefaultHours = []int{8, 20}

// Pattern is the logging habit of a user
type Pattern struct {
	PreferredHours []int
	MissedDays     int
}

// AnalyzePattern learns up to two preferred hours of the day from the reading
// history. Ties are broken by the earlier hour.
func AnalyzePattern(history []time.Time, now time.Time, loc *time.Location) Pattern {
	if len(history) < MinPatternReadings {
		return Pattern{
			PreferredHours: DefaultHours,
			MissedDays:     0,
		}
	}

	counts := map[int]int{}
	latest := history[0]
	for _, ts := range history {
		counts[ts.In(loc).Hour()]++
		if ts.After(latest) {
			latest = ts
		}
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})

	if len(hours) > 2 {
		hours = hours[:2]
	}

	return Pattern{
		PreferredHours: hours,
		MissedDays:     int(math.Floor(now.Sub(latest).Hours() / 24)),
	}
}

// Generate returns the reminders due at now, sorted by priority and then by
// scheduled time. last is the most recent reading of the user, if any.
func Generate(history []time.Time, last *time.Time, now time.Time, loc *time.Location) []schema.Reminder {
	if loc == nil {
		loc = time.UTC
	}

	pattern := AnalyzePattern(history, now, loc)
	local := now.In(loc)

	hoursSinceLast := float64(noReadingHours)
	if last != nil {
		hoursSinceLast = now.Sub(*last).Hours()
	}

	reminders := make([]schema.Reminder, 0)
	for _, h := range pattern.PreferredHours {
		scheduled := time.Date(local.Year(), local.Month(), local.Day(), h, 0, 0, 0, loc)
		if local.Hour() < h || hoursSinceLast < MinHoursSinceReading || scheduled.After(now) {
			continue
		}

		priority := schema.PriorityMedium
		if pattern.MissedDays > HighPriorityAfter {
			priority = schema.PriorityHigh
		}

		reminders = append(reminders, schema.Reminder{
			ID:            fmt.Sprintf("reading-%d", h),
			Type:          schema.ReminderReading,
			Title:         "Time to log your blood pressure",
			Message:       fmt.Sprintf("You usually take a reading around %d:00. Don't forget to log today!", h),
			ScheduledTime: scheduled,
			Priority:      priority,
		})
		break
	}

	if len(reminders) == 0 && pattern.MissedDays >= CatchAllAfter {
		reminders = append(reminders, schema.Reminder{
			ID:            "missed-days",
			Type:          schema.ReminderReading,
			Title:         "We miss your readings!",
			Message:       fmt.Sprintf("You haven't logged a reading in %d days. Regular tracking helps monitor your health.", pattern.MissedDays),
			ScheduledTime: now,
			Priority:      schema.PriorityHigh,
		})
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		if reminders[i].Priority != reminders[j].Priority {
			return reminders[i].Priority.Rank() < reminders[j].Priority.Rank()
		}
		return reminders[i].ScheduledTime.Before(reminders[j].ScheduledTime)
	})

	return reminders
}

// History splits readings into their timestamps and the latest one
func History(readings []schema.Reading) ([]time.Time, *time.Time) {
	history := make([]time.Time, 0, len(readings))
	var last *time.Time
	for i, r := range readings {
		history = append(history, r.Timestamp)
		if last == nil || r.Timestamp.After(*last) {
			last = &readings[i].Timestamp
		}
	}
	return history, last
}

// FromReadings returns the reminders due at now for a reading history
func FromReadings(readings []schema.Reading, now time.Time, loc *time.Location) []schema.Reminder {
	history, last := History(readings)
	return Generate(history, last, now, loc)
}
