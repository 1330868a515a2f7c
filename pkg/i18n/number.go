package i18n

import (
	"github.com/cloudfoundry/jibber_jabber"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberFormatter renders integers with the digit grouping rules of the
// user's locale, e.g. "1,234" under an english locale.
type NumberFormatter struct {
	printer *message.Printer
}

func NewNumberFormatterFromConfig(log *logrus.Entry, configLanguage string) *NumberFormatter {
	tag := configLanguage
	if tag == "auto" {
		tag = detectIETF(jibber_jabber.DetectIETF)
	}

	return NewNumberFormatter(log, tag)
}

func NewNumberFormatter(log *logrus.Entry, languageTag string) *NumberFormatter {
	tag, err := language.Parse(languageTag)
	if err != nil {
		log.Info("unparseable language tag " + languageTag + ", formatting numbers as english")
		tag = language.English
	}

	return &NumberFormatter{printer: message.NewPrinter(tag)}
}

// Format renders a number with locale-aware grouping.
func (f *NumberFormatter) Format(number uint32) string {
	return f.printer.Sprintf("%d", number)
}

// detectIETF extracts the user's full IETF locale from the environment
func detectIETF(localeDetector func() (string, error)) string {
	if userLocale, err := localeDetector(); err == nil {
		return userLocale
	}

	return EN
}
