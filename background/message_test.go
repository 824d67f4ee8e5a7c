package background

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/flo-api/score"
	"github.com/bitmark-inc/flo-api/utils"
)

func TestLocalizedMessage(t *testing.T) {
	utils.InitI18NBundle("../i18n")

	headings, contents, err := LocalizedMessage("score_band_change", func(lang string) map[string]interface{} {
		return map[string]interface{}{
			"Score": 85,
			"Band":  BandName(lang, score.BandExcellent),
		}
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, headings["zh-Hant"])
	assert.NotEmpty(t, headings["en"])
	assert.Equal(t, "Your Flo Score is now 85, which is excellent.", contents["en"])
	assert.NotEmpty(t, contents["zh-Hant"])
}

func TestLocalizedMessageUnknownType(t *testing.T) {
	utils.InitI18NBundle("../i18n")

	_, _, err := LocalizedMessage("unknown", nil)
	assert.Error(t, err)
}

func TestBandNameFallback(t *testing.T) {
	utils.InitI18NBundle("../i18n")

	assert.Equal(t, "needs improvement", BandName("en", score.BandNeedsImprovement))
	assert.Equal(t, "unknown", BandName("en", score.Band("unknown")))
}
