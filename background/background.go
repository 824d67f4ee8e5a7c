package background

import (
	"errors"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/flo-api/store"
	"github.com/bitmark-inc/flo-api/utils"
)

var ErrEmptyMessage = errors.New("empty notification message")

// Background is a struct to maintain common clients
// and functions for all background workers
type Background struct {
	NotificationCenter NotificationCenter
}

// AccountLocation returns the timezone of an account. Unknown accounts use
// the default timezone.
func AccountLocation(core store.AccountStore, userID string) (*time.Location, error) {
	a, err := core.GetAccount(userID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return utils.LocationOrDefault(utils.DefaultTimezone), nil
		}
		return nil, err
	}
	return utils.LocationOrDefault(a.Timezone), nil
}
