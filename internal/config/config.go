package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "tasks.db"
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Toggle     string `toml:"toggle"`
	Delete     string `toml:"delete"`
	Edit       string `toml:"edit"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	Search     string `toml:"search"`
	Filter     string `toml:"filter"`
	Sort       string `toml:"sort"`
	Order      string `toml:"order"`
	Group      string `toml:"group"`
	Categories string `toml:"categories"`
	NextField  string `toml:"next_field"`
	PrevField  string `toml:"prev_field"`
}

type Config struct {
	DBPath        string `toml:"db_path"`
	DefaultFilter string `toml:"default_filter"`
	DefaultSort   string `toml:"default_sort"`
	DefaultOrder  string `toml:"default_order"`
	GroupByStart  bool   `toml:"group_by"`
	Keys          Keymap `toml:"keys"`
}

func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBName
	}
	return cfg, nil
}

func ResolveConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "taskdeck", DefaultConfigFileName)
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		DBPath:        DefaultDBName,
		DefaultFilter: "all",
		DefaultSort:   "due",
		DefaultOrder:  "asc",
		GroupByStart:  false,
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Toggle:     " ",
			Delete:     "d",
			Edit:       "e",
			Confirm:    "enter",
			Cancel:     "esc",
			Search:     "/",
			Filter:     "f",
			Sort:       "s",
			Order:      "o",
			Group:      "g",
			Categories: "c",
			NextField:  "tab",
			PrevField:  "shift+tab",
		},
	}
}
