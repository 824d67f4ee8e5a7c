package alert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/flo-api/schema"
)

func TestDeduplicateSuppressesRecentUnread(t *testing.T) {
	proposed := []schema.Alert{
		{Type: schema.AlertPersistentHigh},
		{Type: schema.AlertMissingReadings},
	}
	existing := []schema.Alert{
		{Type: schema.AlertPersistentHigh, CreatedAt: now.Add(-23 * time.Hour)},
	}

	assert.Equal(t, []schema.AlertType{schema.AlertMissingReadings}, types(Deduplicate(proposed, existing, now)))
}

func TestDeduplicateIgnoresOldOrReadAlerts(t *testing.T) {
	proposed := []schema.Alert{
		{Type: schema.AlertPersistentHigh},
		{Type: schema.AlertMissingReadings},
	}
	existing := []schema.Alert{
		{Type: schema.AlertPersistentHigh, CreatedAt: now.Add(-25 * time.Hour)},
		{Type: schema.AlertMissingReadings, CreatedAt: now.Add(-1 * time.Hour), IsRead: true},
	}

	assert.Equal(t, types(proposed), types(Deduplicate(proposed, existing, now)))
}

func TestDeduplicateNeverSuppressesCrisis(t *testing.T) {
	first := Evaluate([]schema.Reading{reading(185, 95, 25*time.Hour)}, now.Add(-24*time.Hour))
	assert.Equal(t, []schema.AlertType{schema.AlertCrisis}, types(first))

	second := Evaluate([]schema.Reading{reading(190, 100, 1*time.Hour)}, now)
	assert.Equal(t, []schema.AlertType{schema.AlertCrisis}, types(Deduplicate(second, first, now)))

	third := Deduplicate(second, append(first, second...), now)
	assert.Len(t, third, 1)
}

func TestDeduplicateSameTypeTwice(t *testing.T) {
	proposed := Evaluate([]schema.Reading{reading(120, 70, 4*24*time.Hour)}, now)
	stored := Deduplicate(proposed, nil, now)
	assert.Len(t, stored, 1)

	again := Evaluate([]schema.Reading{reading(120, 70, 4*24*time.Hour)}, now.Add(time.Hour))
	assert.Empty(t, Deduplicate(again, stored, now.Add(time.Hour)))
}
