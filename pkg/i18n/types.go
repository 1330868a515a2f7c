package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorOccurred            string
	CannotReadDirectoryError string
	NotADirectoryError       string
	RevealingDirectory       string
	ReportColumnsHeader      string
}
