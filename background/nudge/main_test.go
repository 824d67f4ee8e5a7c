package nudge

import (
	"os"
	"testing"

	"github.com/bitmark-inc/flo-api/mocks"
	"github.com/bitmark-inc/flo-api/utils"
)

var nudgeWorker *NudgeWorker
var mongoMock *mocks.MockMongoStore

func TestMain(m *testing.M) {
	utils.InitI18NBundle("../../i18n")
	nudgeWorker = NewNudgeWorker("test", mongoMock, nil, nil)
	nudgeWorker.Register()
	os.Exit(m.Run())
}
