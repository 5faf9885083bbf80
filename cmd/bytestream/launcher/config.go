// This file maps CLI context and config files to the Config struct.

package launcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ghodss/yaml"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-bytestream/integration"
)

var (
	errHeaderBits = errors.New("frame header must be 8, 16, 32 or 64 bits")
	errChunk      = errors.New("frame chunk must be positive")
	errDelimiter  = errors.New("delimiter must be a single hex encoded byte")
	errLogFormat  = errors.New("log format must be text or json")
)

// Config aggregates everything a command needs.
type Config struct {
	Preset  string        `json:"preset"`
	Input   string        `json:"input"`
	Output  string        `json:"output"`
	Reader  ReaderConfig  `json:"reader"`
	Writer  WriterConfig  `json:"writer"`
	Framing FramingConfig `json:"framing"`
	Logging LoggingConfig `json:"logging"`
}

type ReaderConfig struct {
	Capacity int  `json:"capacity"`
	Fixed    bool `json:"fixed"`
}

type WriterConfig struct {
	Capacity int `json:"capacity"`
}

type FramingConfig struct {
	HeaderBits    int    `json:"headerBits"`
	IncludeHeader bool   `json:"includeHeader"`
	Chunk         int    `json:"chunk"`
	Delimiter     string `json:"delimiter"`
}

type LoggingConfig struct {
	Verbosity int    `json:"verbosity"`
	Format    string `json:"format"`
	Color     bool   `json:"color"`
	SentryDSN string `json:"sentryDSN"`
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

//	defaultConfig builds a Config from DefaultConfig in defaults.go so the two
//	stay in sync.

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Input:  d.Endpoints.Input,
		Output: d.Endpoints.Output,
		Reader: ReaderConfig{
			Capacity: d.Reader.Capacity,
			Fixed:    d.Reader.Fixed,
		},
		Writer: WriterConfig{
			Capacity: d.Writer.Capacity,
		},
		Framing: FramingConfig{
			HeaderBits:    d.Framing.HeaderBits,
			IncludeHeader: d.Framing.IncludeHeader,
			Chunk:         d.Framing.Chunk,
			Delimiter:     d.Framing.Delimiter,
		},
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
			SentryDSN: d.Logging.SentryDSN,
		},
	}
}

// MakeAllConfigs merges defaults, config-file values, the buffer preset and
// CLI overrides into a single config struct, then validates the result.

func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.String("config"); file != "" {
		if err := loadConfigFile(resolvePath(file), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config file %s: %w", file, err)
		}
	}

	if ctx.IsSet("preset") {
		cfg.Preset = ctx.String("preset")
	}
	if cfg.Preset != "" {
		if err := applyPreset(&cfg, cfg.Preset); err != nil {
			return cfg, err
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyPreset replaces the buffer sizing with a named profile.
func applyPreset(cfg *Config, name string) error {
	preset, err := integration.GetPresetByName(name)
	if err != nil {
		return err
	}
	current := integration.PresetConfig{
		ReaderCapacity: cfg.Reader.Capacity,
		ReaderFixed:    cfg.Reader.Fixed,
		WriterCapacity: cfg.Writer.Capacity,
	}
	integration.ApplyPreset(&current, preset)
	cfg.Reader.Capacity = current.ReaderCapacity
	cfg.Reader.Fixed = current.ReaderFixed
	cfg.Writer.Capacity = current.WriterCapacity
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet("input") {
		cfg.Input = ctx.String("input")
	}
	if ctx.IsSet("output") {
		cfg.Output = ctx.String("output")
	}

	if ctx.IsSet("reader.capacity") {
		cfg.Reader.Capacity = ctx.Int("reader.capacity")
	}
	if ctx.IsSet("reader.fixed") {
		cfg.Reader.Fixed = ctx.Bool("reader.fixed")
	}
	if ctx.IsSet("writer.capacity") {
		cfg.Writer.Capacity = ctx.Int("writer.capacity")
	}

	if ctx.IsSet("frame.header") {
		cfg.Framing.HeaderBits = ctx.Int("frame.header")
	}
	if ctx.IsSet("frame.include-header") {
		cfg.Framing.IncludeHeader = ctx.Bool("frame.include-header")
	}
	if ctx.IsSet("frame.chunk") {
		cfg.Framing.Chunk = ctx.Int("frame.chunk")
	}
	if ctx.IsSet("frame.delim") {
		cfg.Framing.Delimiter = ctx.String("frame.delim")
	}

	if ctx.IsSet("log.format") {
		cfg.Logging.Format = ctx.String("log.format")
	}
	if ctx.IsSet("log.verbosity") {
		cfg.Logging.Verbosity = ctx.Int("log.verbosity")
	}
	if ctx.IsSet("log.color") {
		cfg.Logging.Color = ctx.Bool("log.color")
	}
	if ctx.IsSet("log.sentry") {
		cfg.Logging.SentryDSN = ctx.String("log.sentry")
	}
}

func (c Config) validate() error {
	switch c.Framing.HeaderBits {
	case 8, 16, 32, 64:
	default:
		return fmt.Errorf("%w: %d", errHeaderBits, c.Framing.HeaderBits)
	}
	if c.Framing.Chunk <= 0 {
		return fmt.Errorf("%w: %d", errChunk, c.Framing.Chunk)
	}
	if _, err := c.Framing.delimiter(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", errLogFormat, c.Logging.Format)
	}
	return nil
}

// delimiter decodes the hex encoded split byte.
func (f FramingConfig) delimiter() (byte, error) {
	raw := f.Delimiter
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		raw = "0x" + raw
	}
	b, err := hexutil.Decode(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", errDelimiter, f.Delimiter, err)
	}
	if len(b) != 1 {
		return 0, fmt.Errorf("%w: %q", errDelimiter, f.Delimiter)
	}
	return b[0], nil
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
