package config

import (
	"os"
	"path/filepath"

	"github.com/OpenPeeDeeP/xdg"
	yaml "github.com/jesseduffield/yaml"
)

// AppConfig contains the base configuration fields required for reveal.
type AppConfig struct {
	Debug       bool   `long:"debug" env:"DEBUG" default:"false"`
	Version     string `long:"version" env:"VERSION" default:"unversioned"`
	Commit      string `long:"commit" env:"COMMIT"`
	BuildDate   string `long:"build-date" env:"BUILD_DATE"`
	Name        string `long:"name" env:"NAME" default:"reveal"`
	BuildSource string `long:"build-source" env:"BUILD_SOURCE" default:""`
	UserConfig  *UserConfig
	ConfigDir   string
}

// UserConfig holds all of the user-configurable options. The fields here are
// all in PascalCase but in your actual config.yml they'll be in camelCase.
// You can view the default config with `reveal --config`.
type UserConfig struct {
	// Gui is for configuring visual things like colors and language
	Gui GuiConfig `yaml:"gui,omitempty"`

	// Report configures the column layout of the listing
	Report ReportConfig `yaml:"report,omitempty"`
}

// GuiConfig is for configuring visual things like colors and language
type GuiConfig struct {
	// Language is an ISO 639-1 code, or "auto" to detect it from the environment
	Language string `yaml:"language,omitempty"`

	// Colors enables coloring of the type column. Coloring is suppressed
	// automatically when stdout is not a terminal or NO_COLOR is set
	Colors bool `yaml:"colors,omitempty"`

	// Theme maps each entry type to the color attributes used for its name in
	// the type column. Valid attributes are the usual terminal color names
	// plus "bold" and "underline"
	Theme ThemeConfig `yaml:"theme,omitempty"`
}

// ThemeConfig sets the color attributes of the type column, per entry type.
type ThemeConfig struct {
	FileColor      []string `yaml:"fileColor,omitempty"`
	DirectoryColor []string `yaml:"directoryColor,omitempty"`
	SocketColor    []string `yaml:"socketColor,omitempty"`
	CharacterColor []string `yaml:"characterColor,omitempty"`
	BlockColor     []string `yaml:"blockColor,omitempty"`
	FifoColor      []string `yaml:"fifoColor,omitempty"`
	UnknownColor   []string `yaml:"unknownColor,omitempty"`
}

// ReportConfig sets the minimum column widths of the report. Columns grow
// past these widths when their content is wider.
type ReportConfig struct {
	// KindColumnWidth is the minimum width of the left-aligned type column
	KindColumnWidth int `yaml:"kindColumnWidth,omitempty"`

	// SizeColumnWidth is the minimum width of the right-aligned size column
	SizeColumnWidth int `yaml:"sizeColumnWidth,omitempty"`

	// OwnerColumnWidth is the minimum width of the left-aligned owner column
	OwnerColumnWidth int `yaml:"ownerColumnWidth,omitempty"`
}

// GetDefaultConfig returns the application default configuration
// NOTE (to contributors, not users): do not default a boolean to true, because false is the boolean zero value and this will be ignored when parsing the user's config
func GetDefaultConfig() UserConfig {
	return UserConfig{
		Gui: GuiConfig{
			Language: "auto",
			Colors:   false,
			Theme: ThemeConfig{
				FileColor:      []string{"default"},
				DirectoryColor: []string{"blue", "bold"},
				SocketColor:    []string{"magenta"},
				CharacterColor: []string{"yellow"},
				BlockColor:     []string{"yellow", "bold"},
				FifoColor:      []string{"cyan"},
				UnknownColor:   []string{"red"},
			},
		},
		Report: ReportConfig{
			KindColumnWidth:  9,
			SizeColumnWidth:  7,
			OwnerColumnWidth: 10,
		},
	}
}

// NewAppConfig makes a new app config
func NewAppConfig(name, version, commit, date string, buildSource string, debuggingFlag bool) (*AppConfig, error) {
	configDir, err := findOrCreateConfigDir(name)
	if err != nil {
		return nil, err
	}

	userConfig, err := loadUserConfigWithDefaults(configDir)
	if err != nil {
		return nil, err
	}

	appConfig := &AppConfig{
		Name:        name,
		Version:     version,
		Commit:      commit,
		BuildDate:   date,
		Debug:       debuggingFlag || os.Getenv("DEBUG") == "TRUE",
		BuildSource: buildSource,
		UserConfig:  userConfig,
		ConfigDir:   configDir,
	}

	return appConfig, nil
}

func findOrCreateConfigDir(projectName string) (string, error) {
	configDirs := xdg.New("revealcli", projectName)
	folder := configDirs.ConfigHome()

	return folder, os.MkdirAll(folder, 0o755)
}

func loadUserConfigWithDefaults(configDir string) (*UserConfig, error) {
	config := GetDefaultConfig()

	return loadUserConfig(configDir, &config)
}

func loadUserConfig(configDir string, base *UserConfig) (*UserConfig, error) {
	fileName := filepath.Join(configDir, "config.yml")

	if _, err := os.Stat(fileName); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}

		file, err := os.Create(fileName)
		if err != nil {
			return nil, err
		}
		file.Close()
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(content, base); err != nil {
		return nil, err
	}

	return base, nil
}

// ConfigFilename returns the filename of the current config file
func (c *AppConfig) ConfigFilename() string {
	return filepath.Join(c.ConfigDir, "config.yml")
}
