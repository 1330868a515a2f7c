package app

import (
	"os"
	"strings"

	"github.com/revealcli/reveal/pkg/config"
	"github.com/revealcli/reveal/pkg/filesystem"
	"github.com/revealcli/reveal/pkg/i18n"
	"github.com/revealcli/reveal/pkg/log"
	"github.com/revealcli/reveal/pkg/reporter"
	"github.com/sirupsen/logrus"
)

// App struct
type App struct {
	Config          *config.AppConfig
	Log             *logrus.Entry
	Tr              *i18n.TranslationSet
	NumberFormatter *i18n.NumberFormatter
	Reporter        *reporter.Reporter
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		Config: config,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Gui.Language)
	if err != nil {
		return app, err
	}
	app.NumberFormatter = i18n.NewNumberFormatterFromConfig(app.Log, config.UserConfig.Gui.Language)
	app.Reporter = reporter.NewReporter(app.Log, app.Tr, config, app.NumberFormatter, os.Stdout)
	return app, nil
}

// Run reveals the directory at the given path
func (app *App) Run(path string) error {
	directory, err := filesystem.OpenDirectory(app.Log, path)
	if err != nil {
		return err
	}
	defer directory.Close()

	return app.Reporter.Reveal(directory)
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "permission denied",
			newError:      app.Tr.CannotReadDirectoryError,
		},
		{
			originalError: "no such file or directory",
			newError:      app.Tr.CannotReadDirectoryError,
		},
		{
			originalError: "not a directory",
			newError:      app.Tr.NotADirectoryError,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	return "", false
}
