package alert

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/bitmark-inc/flo-api/schema"
)

const DedupWindow = 24 * time.Hour

// Deduplicate drops the proposed alerts whose type is already among the
// unread alerts raised within the last 24 hours. Crisis alerts are always kept.
func Deduplicate(proposed, existing []schema.Alert, now time.Time) []schema.Alert {
	since := now.Add(-DedupWindow)

	active := mapset.NewThreadUnsafeSet[schema.AlertType]()
	for _, a := range existing {
		if a.IsRead || a.CreatedAt.Before(since) {
			continue
		}
		active.Add(a.Type)
	}

	result := make([]schema.Alert, 0, len(proposed))
	for _, a := range proposed {
		if a.Type != schema.AlertCrisis && active.Contains(a.Type) {
			continue
		}
		result = append(result, a)
	}

	return result
}
