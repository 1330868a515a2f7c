package i18n

func polishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:            "Wystąpił błąd! Zgłoś problem na https://github.com/revealcli/reveal/issues",
		CannotReadDirectoryError: "nie można odczytać katalogu. Upewnij się, że masz wystarczające uprawnienia, aby go odczytać.",
		NotADirectoryError:       "podana ścieżka nie jest katalogiem. Wskaż katalog, aby wyświetlić jego zawartość.",
		RevealingDirectory:       "Zawartość katalogu: {{path}}.",
		// the column header keeps the english labels so the fixed widths
		// stay aligned with the entry lines
	}
}
