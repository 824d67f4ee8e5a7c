package background

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/flo-api/score"
	"github.com/bitmark-inc/flo-api/utils"
)

// OneSignalLanguageCode is a mapping between onesignal language code and i18n language code
var OneSignalLanguageCode = map[string]string{
	"zh-Hant": "zh_tw",
	"en":      "en",
}

// TemplateData returns the template data of a message in a language
type TemplateData func(lang string) map[string]interface{}

// LocalizedMessage returns headings and contents in a map where its keys are languages
func LocalizedMessage(msgType string, data TemplateData) (map[string]string, map[string]string, error) {
	headings := map[string]string{}
	contents := map[string]string{}

	for key, lang := range OneSignalLanguageCode {
		loc := utils.NewLocalizer(lang)

		heading, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: fmt.Sprintf("notification.%s.heading", msgType),
		})
		if err != nil {
			return nil, nil, err
		}

		headings[key] = heading

		var templateData map[string]interface{}
		if data != nil {
			templateData = data(lang)
		}

		content, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID:    fmt.Sprintf("notification.%s.content", msgType),
			TemplateData: templateData,
		})
		if err != nil {
			return nil, nil, err
		}
		if content == "" {
			return nil, nil, ErrEmptyMessage
		}

		contents[key] = content
	}

	return headings, contents, nil
}

// BandName returns the localized name of a Flo Score band
func BandName(lang string, band score.Band) string {
	loc := utils.NewLocalizer(lang)
	if name, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("score_band.%s", band),
	}); err == nil {
		return name
	}
	return string(band)
}
