package presentation

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/revealcli/reveal/pkg/config"
	"github.com/revealcli/reveal/pkg/filesystem"
	"github.com/revealcli/reveal/pkg/utils"
)

// GetEntryDisplayStrings returns the column values of one report line,
// minus the index: symlink marker, kind, size, permissions, owner and name
// (with the link target suffixed when present).
func GetEntryDisplayStrings(guiConfig *config.GuiConfig, entry *filesystem.DirectoryEntry) []string {
	return []string{
		getSymlinkMarker(entry),
		getKindDisplay(guiConfig, entry.Kind),
		entry.Size.String(),
		getPermissionsDisplay(entry),
		entry.Owner,
		getNameDisplay(entry),
	}
}

func getSymlinkMarker(entry *filesystem.DirectoryEntry) string {
	if entry.SymlinkTarget != "" {
		return "@"
	}
	return " "
}

func getKindDisplay(guiConfig *config.GuiConfig, kind filesystem.EntryKind) string {
	if !guiConfig.Colors {
		return kind.String()
	}
	return utils.MultiColoredString(kind.String(), getKindColorAttributes(&guiConfig.Theme, kind)...)
}

func getKindColorAttributes(theme *config.ThemeConfig, kind filesystem.EntryKind) []color.Attribute {
	colorNames := map[filesystem.EntryKind][]string{
		filesystem.KindFile:      theme.FileColor,
		filesystem.KindDirectory: theme.DirectoryColor,
		filesystem.KindSocket:    theme.SocketColor,
		filesystem.KindCharacter: theme.CharacterColor,
		filesystem.KindBlock:     theme.BlockColor,
		filesystem.KindFifo:      theme.FifoColor,
		filesystem.KindUnknown:   theme.UnknownColor,
	}[kind]

	attributes := make([]color.Attribute, len(colorNames))
	for i, colorName := range colorNames {
		attributes[i] = utils.GetColorAttribute(colorName)
	}
	return attributes
}

func getPermissionsDisplay(entry *filesystem.DirectoryEntry) string {
	return fmt.Sprintf("%s (%s)", entry.Permissions.Symbolic(), entry.Permissions.Octal())
}

func getNameDisplay(entry *filesystem.DirectoryEntry) string {
	if entry.SymlinkTarget != "" {
		return fmt.Sprintf("%s -> %s", entry.Name, entry.SymlinkTarget)
	}
	return entry.Name
}
