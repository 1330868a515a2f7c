package i18n

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:            "An error occurred! Please create an issue at https://github.com/revealcli/reveal/issues",
		CannotReadDirectoryError: "could not read directory. Ensure that you have enough permissions to read it.",
		NotADirectoryError:       "the given path is not a directory. Point reveal at a directory to list its contents.",
		RevealingDirectory:       "Revealing directory: {{path}}.",
		ReportColumnsHeader:      " Index | Type            Size   Permissions       Owner        Name",
	}
}
