package config

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/daisy/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "daisy.yaml"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutDir is the default gallery output directory.
	DefaultOutDir = "dist"

	// DefaultTheme is the theme applied to gallery pages.
	DefaultTheme = "light"

	// DefaultStyleSheet is the DaisyUI stylesheet linked from every page.
	DefaultStyleSheet = "https://cdn.jsdelivr.net/npm/daisyui@4/dist/full.min.css"

	// DefaultDebounce is how long the watcher waits for changes to settle.
	DefaultDebounce = 200 * time.Millisecond

	// DefaultPollInterval is how often watched paths are scanned.
	DefaultPollInterval = 500 * time.Millisecond
)

// Config represents the complete daisy.yaml configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Build   BuildConfig   `yaml:"build"`
	Preview PreviewConfig `yaml:"preview"`
	Publish PublishConfig `yaml:"publish"`
	Log     LogConfig     `yaml:"log"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SiteConfig controls the document shell around every gallery page.
type SiteConfig struct {
	Title string `yaml:"title" validate:"required"`

	// Theme is a DaisyUI theme name set as data-theme on <html>.
	Theme string `yaml:"theme" validate:"required,theme"`

	StyleSheets []string `yaml:"stylesheets,omitempty" validate:"dive,required"`
	Scripts     []string `yaml:"scripts,omitempty" validate:"dive,required"`
}

// BuildConfig contains static gallery build settings.
type BuildConfig struct {
	OutDir string `yaml:"out_dir" validate:"required"`

	// Workers bounds the number of pages rendered concurrently.
	Workers int  `yaml:"workers" validate:"min=1,max=64"`
	Pretty  bool `yaml:"pretty"`
}

// PreviewConfig contains live preview server settings.
type PreviewConfig struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"min=1,max=65535"`

	// Watch lists paths whose changes trigger a reload.
	Watch []string `yaml:"watch,omitempty"`

	Debounce     time.Duration `yaml:"debounce" validate:"min=0"`
	PollInterval time.Duration `yaml:"poll_interval" validate:"min=0"`

	// Reload enables the live reload WebSocket.
	Reload bool `yaml:"reload"`
}

// PublishConfig describes the object storage target for a built gallery.
type PublishConfig struct {
	Bucket string `yaml:"bucket,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
	Region string `yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint for compatible stores.
	Endpoint  string `yaml:"endpoint,omitempty" validate:"omitempty,url"`
	PathStyle bool   `yaml:"path_style,omitempty"`

	CacheControl string `yaml:"cache_control,omitempty"`
}

// LogConfig controls logger construction.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`

	// Format is "auto" (console on a terminal, JSON otherwise), "console"
	// or "json".
	Format string `yaml:"format" validate:"oneof=auto console json"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Site: SiteConfig{
			Title:       "DaisyUI Components",
			Theme:       DefaultTheme,
			StyleSheets: []string{DefaultStyleSheet},
		},
		Build: BuildConfig{
			OutDir:  DefaultOutDir,
			Workers: 4,
		},
		Preview: PreviewConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			Watch:        []string{ConfigFileName},
			Debounce:     DefaultDebounce,
			PollInterval: DefaultPollInterval,
			Reload:       true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads daisy.yaml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path. A missing
// file yields the defaults, remembering path for Save.
func LoadFile(path string) (*Config, error) {
	cfg := New()
	cfg.configPath = path

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.New("E101").Wrap(err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithLocation(path, extractLine(err), 0).
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error())
	}

	cfg.applyDefaults()

	if err := cfg.validate(data); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.New("E104").Wrap(err)
	}
	if err := enc.Close(); err != nil {
		return errors.New("E104").Wrap(err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.New("E104").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in values a file may have blanked out.
func (c *Config) applyDefaults() {
	if c.Build.OutDir == "" {
		c.Build.OutDir = DefaultOutDir
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Debounce == 0 {
		c.Preview.Debounce = DefaultDebounce
	}
	if c.Preview.PollInterval == 0 {
		c.Preview.PollInterval = DefaultPollInterval
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "auto"
	}
}

// Validate checks the configuration against its validation rules.
func (c *Config) Validate() error {
	var source []byte
	if c.configPath != "" {
		source, _ = os.ReadFile(c.configPath)
	}
	return c.validate(source)
}

func (c *Config) validate(source []byte) error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}
	return convertValidationError(err, c.configPath, source)
}

// PreviewAddress returns the host:port the preview server listens on.
func (c *Config) PreviewAddress() string {
	return net.JoinHostPort(c.Preview.Host, strconv.Itoa(c.Preview.Port))
}

// PreviewURL returns the base URL of the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// OutputPath returns the absolute path to the gallery output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Build.OutDir)
}

// WatchPaths returns the watch list resolved against the project root.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Preview.Watch))
	for _, p := range c.Preview.Watch {
		paths = append(paths, c.resolve(p))
	}
	return paths
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing daisy.yaml, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E103").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// Discover loads the configuration of the project containing startDir.
// Outside any project it returns defaults rooted at startDir.
func Discover(startDir string) (*Config, error) {
	root, err := FindProjectRoot(startDir)
	if err != nil {
		if errors.Code(err) != "E103" {
			return nil, err
		}
		abs, absErr := filepath.Abs(startDir)
		if absErr != nil {
			return nil, absErr
		}
		return Load(abs)
	}
	return Load(root)
}
