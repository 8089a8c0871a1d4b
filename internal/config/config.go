package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration
type Config struct {
	UI       UIConfig        `toml:"ui"`
	Release  ReleaseConfig   `toml:"release"`
	Log      LogConfig       `toml:"log"`
	Accounts []AccountConfig `toml:"accounts"`
	Contacts []ContactConfig `toml:"contacts"`
	Colors   ColorConfig     `toml:"colors"`
}

// UIConfig holds display preferences
type UIConfig struct {
	Splash bool `toml:"splash"`
}

// ReleaseConfig controls the release check
type ReleaseConfig struct {
	Check bool   `toml:"check"`
	URL   string `toml:"url"`  // plain text file holding the latest version
	Site  string `toml:"site"` // shown to the user when an update exists
}

// LogConfig holds logging settings
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"` // debug, info, warn, error
}

// AccountConfig describes one account
type AccountConfig struct {
	Name     string         `toml:"name"`
	JID      string         `toml:"jid"`
	Presence string         `toml:"presence"` // presence requested at login
	Priority PriorityConfig `toml:"priority"`
}

// PriorityConfig holds the priority sent with each presence
type PriorityConfig struct {
	Online int `toml:"online"`
	Chat   int `toml:"chat"`
	Away   int `toml:"away"`
	XA     int `toml:"xa"`
	DND    int `toml:"dnd"`
}

// ContactConfig seeds the contact directory
type ContactConfig struct {
	JID      string `toml:"jid"`
	Name     string `toml:"name"`
	Presence string `toml:"presence"`
}

// ColorConfig holds color definitions
type ColorConfig struct {
	Time      string `toml:"time"`
	Splash    string `toml:"splash"`
	Online    string `toml:"online"`
	Away      string `toml:"away"`
	XA        string `toml:"xa"`
	DND       string `toml:"dnd"`
	Offline   string `toml:"offline"`
	TitleBar  string `toml:"title_bar"`
	StatusBar string `toml:"status_bar"`
	StatusNew string `toml:"status_new"`
}

// Default returns the default configuration
var Default = Config{
	UI: UIConfig{
		Splash: false,
	},
	Release: ReleaseConfig{
		Check: true,
		URL:   "https://natter.im/natter_version.txt",
		Site:  "https://natter.im",
	},
	Log: LogConfig{
		Level: "info",
	},
	Colors: ColorConfig{
		Time:      "#6c7086",
		Splash:    "#89dceb",
		Online:    "#a6e3a1",
		Away:      "#f9e2af",
		XA:        "#fab387",
		DND:       "#f38ba8",
		Offline:   "#6c7086",
		TitleBar:  "#313244",
		StatusBar: "#313244",
		StatusNew: "#f9e2af",
	},
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "natter", "config.toml"), nil
}

// Load reads a TOML file over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Default, fmt.Errorf("decode %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// fillDefaults restores empty strings the file left blank
func (c *Config) fillDefaults() {
	if c.Release.URL == "" {
		c.Release.URL = Default.Release.URL
	}
	if c.Release.Site == "" {
		c.Release.Site = Default.Release.Site
	}
	if c.Log.Level == "" {
		c.Log.Level = Default.Log.Level
	}

	d := Default.Colors
	for _, p := range []struct {
		v   *string
		def string
	}{
		{&c.Colors.Time, d.Time},
		{&c.Colors.Splash, d.Splash},
		{&c.Colors.Online, d.Online},
		{&c.Colors.Away, d.Away},
		{&c.Colors.XA, d.XA},
		{&c.Colors.DND, d.DND},
		{&c.Colors.Offline, d.Offline},
		{&c.Colors.TitleBar, d.TitleBar},
		{&c.Colors.StatusBar, d.StatusBar},
		{&c.Colors.StatusNew, d.StatusNew},
	} {
		if *p.v == "" {
			*p.v = p.def
		}
	}
}
