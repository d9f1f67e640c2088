package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rlocus/internal/locus"
)

const (
	DefaultXMin       = -10.0
	DefaultXMax       = 5.0
	DefaultYMin       = -10.0
	DefaultYMax       = 10.0
	DefaultResolution = 300
	DefaultTolerance  = 5.0
	DefaultSearchMin  = -20.0
	DefaultSearchMax  = 5.0
	DefaultSamples    = 1000
)

// Config describes one root-locus study: the open-loop system plus the
// parameters of every analysis run on it.
type Config struct {
	Name      string          `yaml:"name" mapstructure:"name"`
	System    SystemConfig    `yaml:"system" mapstructure:"system"`
	Scan      ScanConfig      `yaml:"scan" mapstructure:"scan"`
	Breakaway BreakawayConfig `yaml:"breakaway" mapstructure:"breakaway"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
}

// SystemConfig holds poles and zeros as complex literals such as "-1+2i".
type SystemConfig struct {
	Poles []string `yaml:"poles" mapstructure:"poles"`
	Zeros []string `yaml:"zeros" mapstructure:"zeros"`
}

type ScanConfig struct {
	XMin       float64 `yaml:"x_min" mapstructure:"x_min"`
	XMax       float64 `yaml:"x_max" mapstructure:"x_max"`
	YMin       float64 `yaml:"y_min" mapstructure:"y_min"`
	YMax       float64 `yaml:"y_max" mapstructure:"y_max"`
	Resolution int     `yaml:"resolution" mapstructure:"resolution"`
	// Tolerance is the angle-condition tolerance in degrees.
	Tolerance float64 `yaml:"tolerance" mapstructure:"tolerance"`
}

type BreakawayConfig struct {
	Min     float64 `yaml:"min" mapstructure:"min"`
	Max     float64 `yaml:"max" mapstructure:"max"`
	Samples int     `yaml:"samples" mapstructure:"samples"`
	Step    float64 `yaml:"step" mapstructure:"step"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text, json
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr or a file path
}

func DefaultConfig() *Config {
	return &Config{
		Name: "textbook",
		System: SystemConfig{
			Poles: []string{"0", "-2", "-4"},
			Zeros: []string{"-1"},
		},
		Scan: ScanConfig{
			XMin:       DefaultXMin,
			XMax:       DefaultXMax,
			YMin:       DefaultYMin,
			YMax:       DefaultYMax,
			Resolution: DefaultResolution,
			Tolerance:  DefaultTolerance,
		},
		Breakaway: BreakawayConfig{
			Min:     DefaultSearchMin,
			Max:     DefaultSearchMax,
			Samples: DefaultSamples,
			Step:    locus.DefaultDerivativeStep,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads a YAML study file on top of the defaults. Environment
// variables prefixed with RLOCUS_ override file values, e.g.
// RLOCUS_SCAN_RESOLUTION=500.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("RLOCUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	// the system always comes from the file, never from the default study
	cfg.System = SystemConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that the study can be run.
func (c *Config) Validate() error {
	if len(c.System.Poles) == 0 {
		return fmt.Errorf("system needs at least one pole")
	}
	if _, err := c.PoleZeroSet(); err != nil {
		return err
	}
	if !c.ScanX().Valid() || !c.ScanY().Valid() {
		return fmt.Errorf("scan window [%v, %v] × [%v, %v] is empty", c.Scan.XMin, c.Scan.XMax, c.Scan.YMin, c.Scan.YMax)
	}
	if c.Scan.Resolution < 2 {
		return fmt.Errorf("scan resolution must be at least 2, got %d", c.Scan.Resolution)
	}
	if c.Scan.Tolerance < 0 {
		return fmt.Errorf("scan tolerance must not be negative, got %v", c.Scan.Tolerance)
	}
	if !(locus.Interval{Min: c.Breakaway.Min, Max: c.Breakaway.Max}).Valid() {
		return fmt.Errorf("breakaway range [%v, %v] is empty", c.Breakaway.Min, c.Breakaway.Max)
	}
	if c.Breakaway.Samples < 2 {
		return fmt.Errorf("breakaway samples must be at least 2, got %d", c.Breakaway.Samples)
	}
	if c.Breakaway.Step < 0 {
		return fmt.Errorf("derivative step must not be negative, got %v", c.Breakaway.Step)
	}
	return nil
}

// PoleZeroSet parses the configured poles and zeros.
func (c *Config) PoleZeroSet() (*locus.PoleZeroSet, error) {
	poles, err := ParseComplexList(c.System.Poles)
	if err != nil {
		return nil, fmt.Errorf("poles: %w", err)
	}
	zeros, err := ParseComplexList(c.System.Zeros)
	if err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	return locus.New(poles, zeros), nil
}

func (c *Config) ScanX() locus.Interval {
	return locus.Interval{Min: c.Scan.XMin, Max: c.Scan.XMax}
}

func (c *Config) ScanY() locus.Interval {
	return locus.Interval{Min: c.Scan.YMin, Max: c.Scan.YMax}
}

// ParseComplexList parses literals like "-2", "-1+2i" or "3i".
func ParseComplexList(values []string) ([]complex128, error) {
	out := make([]complex128, 0, len(values))
	for _, raw := range values {
		s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
		s = strings.ReplaceAll(s, "j", "i")
		v, err := strconv.ParseComplex(s, 128)
		if err != nil {
			return nil, fmt.Errorf("invalid complex value %q", raw)
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatComplex renders v in the form accepted by ParseComplexList.
func FormatComplex(v complex128) string {
	if imag(v) == 0 {
		return strconv.FormatFloat(real(v), 'g', -1, 64)
	}
	return strings.Trim(strconv.FormatComplex(v, 'g', -1, 128), "()")
}
