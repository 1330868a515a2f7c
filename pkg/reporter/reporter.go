package reporter

import (
	"fmt"
	"io"

	"github.com/revealcli/reveal/pkg/config"
	"github.com/revealcli/reveal/pkg/filesystem"
	"github.com/revealcli/reveal/pkg/i18n"
	"github.com/revealcli/reveal/pkg/presentation"
	"github.com/revealcli/reveal/pkg/utils"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

const indexColumnWidth = 6

// Reporter renders one directory listing as an indexed, column-aligned
// report: a header naming the directory, a column header line, then one
// line per entry in sorted order.
type Reporter struct {
	Log             *logrus.Entry
	Tr              *i18n.TranslationSet
	Config          *config.AppConfig
	NumberFormatter *i18n.NumberFormatter
	Writer          io.Writer
}

// NewReporter returns a reporter writing to the given writer
func NewReporter(log *logrus.Entry, tr *i18n.TranslationSet, appConfig *config.AppConfig, numberFormatter *i18n.NumberFormatter, writer io.Writer) *Reporter {
	return &Reporter{
		Log:             log,
		Tr:              tr,
		Config:          appConfig,
		NumberFormatter: numberFormatter,
		Writer:          writer,
	}
}

// Reveal consumes the directory's traversal session and prints the report.
// An empty directory still gets its header and column line.
func (r *Reporter) Reveal(directory *filesystem.Directory) error {
	entries := directory.Entries()
	r.Log.WithField("entries", len(entries)).Info("revealing " + directory.Path())

	header := utils.ResolvePlaceholderString(r.Tr.RevealingDirectory, map[string]string{
		"path": directory.Path(),
	})
	if _, err := fmt.Fprintln(r.Writer, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.Writer, r.Tr.ReportColumnsHeader); err != nil {
		return err
	}

	lines := lo.Map(entries, func(entry filesystem.DirectoryEntry, index int) string {
		return fmt.Sprintf(
			"%s | %s",
			utils.RightAligned(r.NumberFormatter.Format(uint32(index)), indexColumnWidth),
			r.getEntryLine(&entry),
		)
	})

	for _, line := range lines {
		if _, err := fmt.Fprintln(r.Writer, line); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reporter) getEntryLine(entry *filesystem.DirectoryEntry) string {
	report := r.Config.UserConfig.Report
	columns := presentation.GetEntryDisplayStrings(&r.Config.UserConfig.Gui, entry)

	return fmt.Sprintf(
		"%s%s   %s   %s   %s   %s",
		columns[0],
		utils.WithPadding(columns[1], report.KindColumnWidth),
		utils.RightAligned(columns[2], report.SizeColumnWidth),
		columns[3],
		utils.WithPadding(columns[4], report.OwnerColumnWidth),
		columns[5],
	)
}
