package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/vango-dev/domgen/internal/errors"
	"github.com/vango-dev/domgen/pkg/compile"
	"github.com/vango-dev/domgen/pkg/lower"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "domgen.json"

	// DefaultSuffix replaces ".go" in the name of generated files.
	DefaultSuffix = ".gen.go"

	// DefaultAddr is the default address of the compile service.
	DefaultAddr = "localhost:7070"

	// DefaultMaxBodyBytes limits the size of one document sent to the service.
	DefaultMaxBodyBytes = 4 << 20
)

// Config represents the complete domgen.json configuration.
type Config struct {
	// TemplateMode hoists static trees into cloned templates.
	TemplateMode bool `json:"templateMode,omitempty"`

	// MinifyTemplates minifies template HTML. Requires TemplateMode.
	MinifyTemplates bool `json:"minifyTemplates,omitempty"`

	// MaxDepth bounds literal nesting.
	MaxDepth int `json:"maxDepth,omitempty" validate:"gte=0"`

	// Placeholder is the function name the parser left in place of literals.
	Placeholder string `json:"placeholder,omitempty" validate:"goident"`

	// Runtime names the builder runtime package.
	Runtime RuntimeConfig `json:"runtime,omitempty"`

	// Output contains settings for generated files.
	Output OutputConfig `json:"output,omitempty"`

	// Serve contains compile service settings.
	Serve ServeConfig `json:"serve,omitempty"`

	// S3 sends generated files to a bucket instead of the local disk.
	S3 S3Config `json:"s3,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RuntimeConfig names the builder runtime package.
type RuntimeConfig struct {
	// Import is the import path of the runtime.
	Import string `json:"import,omitempty"`

	// Name is the package name the generated code uses.
	Name string `json:"name,omitempty" validate:"goident"`
}

// OutputConfig contains settings for generated files.
type OutputConfig struct {
	// Dir is the output directory. Empty writes next to each input.
	Dir string `json:"dir,omitempty"`

	// Suffix replaces ".go" in generated file names.
	Suffix string `json:"suffix,omitempty" validate:"endswith=.go"`
}

// ServeConfig contains compile service settings.
type ServeConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr,omitempty"`

	// MaxBodyBytes limits the size of one request.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty" validate:"gte=0"`
}

// S3Config selects an S3 bucket as the output target.
type S3Config struct {
	Bucket   string `json:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty" validate:"excluded_without=Bucket"`
	Region   string `json:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty" validate:"omitempty,url,excluded_without=Bucket"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory.
// It looks for domgen.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No domgen.json found in " + filepath.Dir(path)).
				WithSuggestion("Run 'domgen init' to create one")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse domgen.json: " + err.Error()).
			WithSuggestion("Check that domgen.json is valid JSON").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
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

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.MaxDepth == 0 {
		c.MaxDepth = lower.DefaultMaxDepth
	}
	if c.Placeholder == "" {
		c.Placeholder = compile.DefaultPlaceholder
	}
	if c.Runtime.Import == "" {
		c.Runtime.Import = compile.DefaultRuntimeImport
	}
	if c.Runtime.Name == "" {
		c.Runtime.Name = compile.DefaultRuntimeName
	}
	if c.Output.Suffix == "" {
		c.Output.Suffix = DefaultSuffix
	}
	if c.Serve.Addr == "" {
		c.Serve.Addr = DefaultAddr
	}
	if c.Serve.MaxBodyBytes == 0 {
		c.Serve.MaxBodyBytes = DefaultMaxBodyBytes
	}
}

// Apply sets options from key/value pairs, e.g. command-line flags or
// query parameters. Known keys are applied; unknown keys are reported
// together in one E122 error.
func (c *Config) Apply(overrides map[string]string) error {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var unknown []string
	for _, key := range keys {
		value := overrides[key]
		var err error
		switch key {
		case "templateMode":
			c.TemplateMode, err = strconv.ParseBool(value)
		case "minifyTemplates":
			c.MinifyTemplates, err = strconv.ParseBool(value)
		case "maxDepth":
			c.MaxDepth, err = strconv.Atoi(value)
		case "placeholder":
			c.Placeholder = value
		case "runtime.import":
			c.Runtime.Import = value
		case "runtime.name":
			c.Runtime.Name = value
		case "output.dir":
			c.Output.Dir = value
		case "output.suffix":
			c.Output.Suffix = value
		case "serve.addr":
			c.Serve.Addr = value
		case "s3.bucket":
			c.S3.Bucket = value
		case "s3.prefix":
			c.S3.Prefix = value
		case "s3.region":
			c.S3.Region = value
		case "s3.endpoint":
			c.S3.Endpoint = value
		default:
			unknown = append(unknown, key)
			continue
		}
		if err != nil {
			return errors.New("E122").WithDetailf("%s=%q: %v", key, value, err).Wrap(err)
		}
	}
	if len(unknown) > 0 {
		return errors.New("E122").
			WithDetail("unknown option(s): " + strings.Join(unknown, ", ")).
			WithSuggestion("Known options: " + strings.Join(Keys(), ", "))
	}
	return nil
}

// Keys returns the option names Apply accepts.
func Keys() []string {
	return []string{
		"templateMode", "minifyTemplates", "maxDepth", "placeholder",
		"runtime.import", "runtime.name", "output.dir", "output.suffix",
		"serve.addr", "s3.bucket", "s3.prefix", "s3.region", "s3.endpoint",
	}
}

// CompileOptions returns the compiler options described by c.
func (c *Config) CompileOptions() compile.Options {
	return compile.Options{
		Lower: lower.Options{
			TemplateMode:    c.TemplateMode,
			MinifyTemplates: c.MinifyTemplates,
			MaxDepth:        c.MaxDepth,
		},
		Placeholder:   c.Placeholder,
		RuntimeImport: c.Runtime.Import,
		RuntimeName:   c.Runtime.Name,
	}
}

// OutputTarget returns where generated files go: an s3:// URL, an absolute
// directory, or "" for next to each input.
func (c *Config) OutputTarget() string {
	if c.S3.Bucket != "" {
		target := "s3://" + c.S3.Bucket
		if p := strings.Trim(c.S3.Prefix, "/"); p != "" {
			target += "/" + p
		}
		return target
	}
	if c.Output.Dir == "" || filepath.IsAbs(c.Output.Dir) {
		return c.Output.Dir
	}
	return filepath.Join(c.Dir(), c.Output.Dir)
}

// OutputName returns the name of the file generated for input.
func (c *Config) OutputName(input string) string {
	return strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + c.Output.Suffix
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing domgen.json, or an error if not found.
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
			return "", errors.New("E141").
				WithDetail("No domgen.json found in " + startDir + " or any parent directory").
				WithSuggestion("Run 'domgen init' to create one")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory
// or its nearest parent with a domgen.json.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}
