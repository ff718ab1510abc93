package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"git.lost.host/meutraa/timbre/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

const name = "timbre"

var (
	ConfigFile       = kingpin.Flag("config", "Configuration file").Short('c').String()
	database         = kingpin.Flag("database", "Session database").Short('d').String()
	notesPath        = kingpin.Flag("notes", "Directory of note samples").String()
	tonalCentersPath = kingpin.Flag("tonal-centers", "Directory of tonal center samples").String()
	extension        = kingpin.Flag("extension", "Sample file extension").String()
	tonality         = kingpin.Flag("tonality", "Start a new game in this key, e.g. Cmaj").Short('t').String()
	keys             = kingpin.Flag("keys", "Keys for C to B").String()
	RepeatKey        = kingpin.Flag("repeat-key", "Key to repeat the note").Default("x").Short('r').String()
	TonalCenterKey   = kingpin.Flag("tonal-center-key", "Key to play the tonal center").Default("z").String()
	Verbose          = kingpin.Flag("verbose", "Log debug output").Short('v').Bool()

	DatabasePath     string
	NotesPath        string
	TonalCentersPath string
	Extension        string
	Keys             []rune
	// Nil unless a new game was asked for
	Tonality *game.Tonality
)

// File is the optional yaml configuration. Flags take precedence.
type File struct {
	NotesPath        string `yaml:"notes_path"`
	TonalCentersPath string `yaml:"tonal_centers_path"`
	Database         string `yaml:"database"`
	Extension        string `yaml:"extension"`
	Keys             string `yaml:"keys"`
}

func dataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, name)
	}
	home, err := os.UserHomeDir()
	if nil != err {
		return name
	}
	return filepath.Join(home, ".local", "share", name)
}

func defaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if nil != err {
		return ""
	}
	return filepath.Join(dir, name, "config.yaml")
}

// Defaults mirror the sample archive layout under the data directory.
func Defaults() File {
	data := dataDir()
	return File{
		NotesPath:        filepath.Join(data, "samples", "notes"),
		TonalCentersPath: filepath.Join(data, "samples", "tonal-centers"),
		Database:         filepath.Join(data, name+".db"),
		Extension:        ".ogg",
		Keys:             "awsedftgyhuj",
	}
}

// Load reads a yaml configuration file. A missing file is not an error.
func Load(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if nil != err {
		return f, fmt.Errorf("unable to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); nil != err {
		return f, fmt.Errorf("unable to parse config %v: %w", path, err)
	}
	return f, nil
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Merge fills every field of f that is unset from the later files.
func (f File) Merge(others ...File) File {
	for _, o := range others {
		f.NotesPath = pick(f.NotesPath, o.NotesPath)
		f.TonalCentersPath = pick(f.TonalCentersPath, o.TonalCentersPath)
		f.Database = pick(f.Database, o.Database)
		f.Extension = pick(f.Extension, o.Extension)
		f.Keys = pick(f.Keys, o.Keys)
	}
	return f
}

func flags() File {
	return File{
		NotesPath:        *notesPath,
		TonalCentersPath: *tonalCentersPath,
		Database:         *database,
		Extension:        *extension,
		Keys:             *keys,
	}
}

func apply(f File) error {
	Keys = []rune(f.Keys)
	if len(Keys) != len(game.Keyboard) {
		return fmt.Errorf("expected %d keys, got %q", len(game.Keyboard), f.Keys)
	}
	DatabasePath = f.Database
	NotesPath = f.NotesPath
	TonalCentersPath = f.TonalCentersPath
	Extension = f.Extension
	return nil
}

// KeyIndex returns the piano key bound to r, or -1.
func KeyIndex(r rune) int {
	for i, c := range Keys {
		if r == c {
			return i
		}
	}
	return -1
}

func selectable(t game.Tonality) bool {
	for _, s := range game.Tonalities {
		if s == t {
			return true
		}
	}
	return false
}

func Parse() error {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	path := pick(*ConfigFile, defaultConfigFile())
	file, err := Load(path)
	if nil != err {
		return err
	}
	if err := apply(flags().Merge(file, Defaults())); nil != err {
		return err
	}

	if *tonality != "" {
		t, err := game.ParseTonality(*tonality)
		if nil != err {
			return err
		}
		if !selectable(t) {
			return fmt.Errorf("%w %v", game.ErrNoGamut, t)
		}
		Tonality = &t
	}
	return nil
}
