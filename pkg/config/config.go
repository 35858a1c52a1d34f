package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cwalker/chimera/pkg/errors"
	"github.com/cwalker/chimera/pkg/logging"
	"github.com/cwalker/chimera/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment variables read into the config.
// CHIMERA_<SECTION>_<KEY> sets section.key for the content, shortcuts and
// banner sections; other CHIMERA_ variables are not configuration.
const EnvPrefix = "CHIMERA_"

// EnvDataDir is a short form of CHIMERA_CONTENT_DATA_DIR, which wins when
// both are set.
const EnvDataDir = "CHIMERA_DATA_DIR"

var envSections = map[string]bool{"content": true, "shortcuts": true, "banner": true}

// Config is the effective chimera configuration
type Config struct {
	Content   Content   `koanf:"content" toml:"content"`
	Shortcuts Shortcuts `koanf:"shortcuts" toml:"shortcuts"`
	Banner    Banner    `koanf:"banner" toml:"banner"`

	paths paths.Paths
}

// Content configures the content store
type Content struct {
	DataDir     string `koanf:"data_dir" toml:"data_dir"`
	DefaultType string `koanf:"default_type" toml:"default_type"`
}

// Shortcuts configures where shortcut files are read from
type Shortcuts struct {
	Dir string `koanf:"dir" toml:"dir"`
}

// Banner configures banner rendering
type Banner struct {
	FontPath string  `koanf:"font_path" toml:"font_path"`
	FontSize float64 `koanf:"font_size" toml:"font_size"`
}

// Load builds the configuration from the embedded defaults, the user file,
// the environment and overrides, each layer winning over the previous one.
// configPath names the user file; when empty p.ConfigFilePath() is used and
// may be absent. overrides are dotted keys, typically from command-line
// flags.
func Load(p paths.Paths, configPath string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	explicit := configPath != ""
	if !explicit {
		configPath = p.ConfigFilePath()
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath).
				WithDetail("path", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", configPath).
			WithDetail("path", configPath)
	}

	// 3. Environment
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flag overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envValue skips empty variables so an exported but blank value does not
// clear a key set by the config file
func envValue(key, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envKey(key), value
}

// envKey maps CHIMERA_BANNER_FONT_SIZE to banner.font_size. Only the first
// underscore separates the section, the rest belong to the key. Variables
// outside the known sections map to "" and are skipped.
func envKey(s string) string {
	if s == EnvDataDir {
		if os.Getenv(EnvPrefix+"CONTENT_DATA_DIR") != "" {
			return ""
		}
		return "content.data_dir"
	}

	section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_")
	if !ok || key == "" || !envSections[section] {
		return ""
	}
	return section + "." + key
}

// resolve fills empty directories from the XDG defaults. The shortcuts
// directory defaults to <data_dir>/shortcuts.
func (c *Config) resolve() error {
	resolved, err := paths.New(c.Content.DataDir, c.Shortcuts.Dir)
	if err != nil {
		return err
	}
	c.paths = resolved
	c.Content.DataDir = resolved.DataDir()
	c.Shortcuts.Dir = resolved.ShortcutsDir()

	if c.Content.DefaultType == "" {
		c.Content.DefaultType = "content"
	}

	if c.Banner.FontPath != "" {
		abs, err := filepath.Abs(paths.ExpandHome(c.Banner.FontPath))
		if err != nil {
			return errors.Wrapf(err, errors.ErrConfigLoad, "failed to resolve %s", c.Banner.FontPath)
		}
		c.Banner.FontPath = abs
	}

	if c.Banner.FontSize < 0 {
		return errors.Newf(errors.ErrInvalidInput, "banner.font_size must not be negative, got %v", c.Banner.FontSize)
	}
	return nil
}

// Paths returns the directories this configuration resolved to. It is set
// on every Config returned by Load.
func (c *Config) Paths() paths.Paths {
	return c.paths
}

// ContentDir is the base directory for a content type; "" selects
// content.default_type.
func (c *Config) ContentDir(contentType string) string {
	if contentType == "" {
		contentType = c.Content.DefaultType
	}
	return c.paths.ContentDir(contentType)
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() (string, error) {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return string(data), nil
}
