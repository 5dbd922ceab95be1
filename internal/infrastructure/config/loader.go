package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameFiles lists the candidate root config files in lookup order
var GameFiles = []string{"game.yaml", "game.yml", "game.json"}

// Loader loads game configuration from YAML/JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads the root config on top of the embedded defaults.
// Fields missing from the file keep their default values.
func (l *Loader) LoadGame() (*GameConfig, error) {
	cfg := Default()
	for _, name := range GameFiles {
		data, err := fs.ReadFile(l.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := decode(name, data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return cfg, nil
	}
	return nil, fmt.Errorf("no game config in %s: %w", l.basePath, fs.ErrNotExist)
}

// LoadStage loads stages/<name>.json, .yaml or .tmx
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		p := "stages/" + name + ext
		data, err := fs.ReadFile(l.fsys, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
		}
		var cfg StageConfig
		if err := decode(p, data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
		}
		return &cfg, nil
	}

	tmx := "stages/" + name + ".tmx"
	if _, err := fs.Stat(l.fsys, tmx); err == nil {
		return LoadTMXStage(l.fsys, tmx)
	}
	return nil, fmt.Errorf("failed to read stage %s: %w", name, fs.ErrNotExist)
}

// LoadAll loads and validates the root configuration
func (l *Loader) LoadAll() (*GameConfig, error) {
	cfg, err := l.LoadGame()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode picks the codec from the file extension
func decode(name string, data []byte, v any) error {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".json":
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported config format %q", path.Ext(name))
	}
}
