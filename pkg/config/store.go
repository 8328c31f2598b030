package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/fvm/pkg/errors"
	"github.com/arthur-debert/fvm/pkg/logging"
	"github.com/arthur-debert/fvm/pkg/paths"
	"github.com/arthur-debert/fvm/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "FVM_"

// Settings is the view of the configuration the core depends on.
type Settings interface {
	// GetString returns the current value, with ~ expanded. Unset keys yield "".
	GetString(key string) string
	// Set stores value and persists it before returning.
	Set(key, value string) error
}

// Snapshot is the typed form of all settings.
type Snapshot struct {
	Factorio FactorioSettings `koanf:"factorio" toml:"factorio" json:"factorio" yaml:"factorio"`
	Storage  StorageSettings  `koanf:"storage" toml:"storage" json:"storage" yaml:"storage"`
}

type FactorioSettings struct {
	InstallationsDir string `koanf:"installations_dir" toml:"installations_dir" json:"installations_dir" yaml:"installations_dir"`
	SteamPath        string `koanf:"steam_path" toml:"steam_path" json:"steam_path" yaml:"steam_path"`
}

type StorageSettings struct {
	SavesDir     string `koanf:"saves_dir" toml:"saves_dir" json:"saves_dir" yaml:"saves_dir"`
	ScenariosDir string `koanf:"scenarios_dir" toml:"scenarios_dir" json:"scenarios_dir" yaml:"scenarios_dir"`
	ModsDir      string `koanf:"mods_dir" toml:"mods_dir" json:"mods_dir" yaml:"mods_dir"`
}

// Store is the koanf-backed Settings implementation.
type Store struct {
	fs   types.FS
	path string

	defaults *koanf.Koanf
	user     *koanf.Koanf
	env      *koanf.Koanf
	merged   *koanf.Koanf
}

// Load opens the settings store at the standard location.
func Load(fs types.FS, p paths.Paths) (*Store, error) {
	return NewStore(fs, p.ConfigFilePath(), Defaults(p))
}

// NewStore builds a store persisted at path. A missing file is not an error.
func NewStore(fs types.FS, path string, defaults map[string]interface{}) (*Store, error) {
	logger := logging.GetLogger("config")
	s := &Store{
		fs:       fs,
		path:     path,
		defaults: koanf.New("."),
		user:     koanf.New("."),
		env:      koanf.New("."),
	}

	if err := s.defaults.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}
	if err := s.defaults.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load computed defaults")
	}

	content, err := fs.ReadFile(path)
	switch {
	case err == nil:
		if err := s.user.Load(&rawBytesProvider{bytes: content}, toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user settings")
	case os.IsNotExist(err):
		logger.Debug().Str("path", path).Msg("No user settings file")
	default:
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	err = s.env.Load(env.Provider(EnvPrefix, ".", func(key string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	if err := s.rebuild(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) rebuild() error {
	merged := koanf.New(".")
	for _, layer := range []*koanf.Koanf{s.defaults, s.user, s.env} {
		if err := merged.Merge(layer); err != nil {
			return errors.Wrap(err, errors.ErrConfigLoad, "failed to merge settings")
		}
	}
	s.merged = merged
	return nil
}

// Path returns the user settings file.
func (s *Store) Path() string {
	return s.path
}

// GetString implements Settings.
func (s *Store) GetString(key string) string {
	return paths.ExpandHome(s.merged.String(key))
}

// Set implements Settings. Every setting is a directory, so values must be
// absolute after ~ expansion; an empty value unsets. Environment overrides
// still win over the stored value.
func (s *Store) Set(key, value string) error {
	if !IsKnownKey(key) {
		return errors.Newf(errors.ErrInvalidInput, "unknown setting %q", key)
	}
	if value != "" && !filepath.IsAbs(paths.ExpandHome(value)) {
		return errors.Newf(errors.ErrInvalidInput, "%s must be an absolute path, got %q", key, value).
			WithDetail("key", key)
	}
	if err := s.user.Set(key, value); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to set %s", key)
	}
	if err := s.rebuild(); err != nil {
		return err
	}
	if s.env.Exists(key) {
		logger := logging.GetLogger("config")
		logger.Warn().Str("key", key).Msg("Setting is overridden by the environment")
	}
	return s.save()
}

func (s *Store) save() error {
	data, err := s.user.Marshal(toml.Parser())
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to encode settings")
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(s.path))
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", s.path)
	}
	logger := logging.GetLogger("config")
	logger.Debug().Str("path", s.path).Msg("Saved user settings")
	return nil
}

// Snapshot decodes the merged settings into a typed value.
func (s *Store) Snapshot() (Snapshot, error) {
	var snap Snapshot
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &snap,
			WeaklyTypedInput: true,
			DecodeHook:       expandHomeHookFunc(),
		},
	}
	if err := s.merged.UnmarshalWithConf("", &snap, conf); err != nil {
		return Snapshot{}, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	return snap, nil
}

// expandHomeHookFunc expands ~ in every string value while decoding.
func expandHomeHookFunc() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String || to != reflect.String {
			return data, nil
		}
		return paths.ExpandHome(data.(string)), nil
	}
}
