package integration

import "fmt"

// Package integration provides buffer presets for the command line. Presets
// bundle the reader and writer sizing into named profiles (lite, network,
// bulk) so a workload can be tuned with one flag instead of three.
//
// Usage:
//   cfg := integration.LitePreset()    // small fixed buffers, bounded memory
//   cfg := integration.NetworkPreset() // socket sized reads and writes
//   cfg := integration.BulkPreset()    // large buffers for file to file jobs
//
// Each preset returns a PresetConfig struct that the launcher merges into its
// main config after the config file and before command-line flags.

// PresetConfig captures the buffer parameters that vary across profiles.
type PresetConfig struct {
	Name           string // human-readable identifier (e.g., "lite", "bulk")
	ReaderCapacity int    // initial read buffer size in bytes
	ReaderFixed    bool   // whether the read buffer refuses to grow
	WriterCapacity int    // write buffer size in bytes
}

func DefaultPreset() PresetConfig {

	return PresetConfig{
		Name:           "default",
		ReaderCapacity: 4096,  // one page: enough for line and frame oriented input
		ReaderFixed:    false, // grow when a line or frame does not fit
		WriterCapacity: 4096,  // one page per flush
	}
}

// LitePreset returns small buffers with a hard memory ceiling.
//
// Trade-offs:
//   - A line, frame or chunk longer than the read buffer fails with
//     "not enough space" instead of growing the buffer
//   - More, smaller writes reach the sink
func LitePreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "lite"
	cfg.ReaderCapacity = 512 // small enough for constrained environments
	cfg.ReaderFixed = true   // never grow past the ceiling
	cfg.WriterCapacity = 512
	return cfg
}

// NetworkPreset sizes reads for socket receive buffers and keeps writes close
// to a typical Ethernet payload so frames leave promptly.
func NetworkPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "network"
	cfg.ReaderCapacity = 16 * 1024 // drains a busy socket in few reads
	cfg.WriterCapacity = 1400      // roughly one packet per flush
	return cfg
}

// BulkPreset uses large buffers so file to file jobs issue few system calls.
//
// Trade-offs:
//   - Uses more memory per stream
//   - Output becomes visible in large bursts
func BulkPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "bulk"
	cfg.ReaderCapacity = 64 * 1024
	cfg.WriterCapacity = 64 * 1024
	return cfg
}

// GetPresetByName looks up a preset by its string identifier and returns the
// corresponding PresetConfig. Returns an error if the name is unrecognized.
//
// Example:
//
//	preset, err := integration.GetPresetByName("lite")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetPresetByName(name string) (PresetConfig, error) {
	switch name {
	case "lite":
		return LitePreset(), nil
	case "network":
		return NetworkPreset(), nil
	case "bulk":
		return BulkPreset(), nil
	case "default":
		return DefaultPreset(), nil
	default:
		return PresetConfig{}, fmt.Errorf("unknown preset: %q (valid: lite, network, bulk, default)", name)
	}
}

// ApplyPreset merges a preset configuration into an existing config struct.
// Sizes set in the preset override the corresponding values in the target;
// zero sizes leave the target alone.
func ApplyPreset(target *PresetConfig, preset PresetConfig) {
	if preset.ReaderCapacity > 0 {
		target.ReaderCapacity = preset.ReaderCapacity
	}
	if preset.WriterCapacity > 0 {
		target.WriterCapacity = preset.WriterCapacity
	}
	// boolean flags are always applied (no zero-value check needed)
	target.ReaderFixed = preset.ReaderFixed
	if preset.Name != "" {
		target.Name = preset.Name
	}
}
