package integration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaultPreset_hasReasonableDefaults guards the baseline sizes: if they
// change, we want to know immediately.
func TestDefaultPreset_hasReasonableDefaults(t *testing.T) {
	cfg := DefaultPreset()

	require.Equal(t, "default", cfg.Name)
	require.Equal(t, 4096, cfg.ReaderCapacity)
	require.Equal(t, 4096, cfg.WriterCapacity)
	require.False(t, cfg.ReaderFixed, "default reader should grow on demand")
}

// TestPresets_overrideDefaults verifies that every named preset differs from
// the default in the direction its name promises.
func TestPresets_overrideDefaults(t *testing.T) {
	def := DefaultPreset()

	lite := LitePreset()
	require.Equal(t, "lite", lite.Name)
	require.Less(t, lite.ReaderCapacity, def.ReaderCapacity)
	require.Less(t, lite.WriterCapacity, def.WriterCapacity)
	require.True(t, lite.ReaderFixed, "lite should cap memory")

	network := NetworkPreset()
	require.Equal(t, "network", network.Name)
	require.Greater(t, network.ReaderCapacity, def.ReaderCapacity)
	require.Less(t, network.WriterCapacity, def.WriterCapacity)

	bulk := BulkPreset()
	require.Equal(t, "bulk", bulk.Name)
	require.Greater(t, bulk.ReaderCapacity, network.ReaderCapacity)
	require.Greater(t, bulk.WriterCapacity, def.WriterCapacity)
	require.False(t, bulk.ReaderFixed)
}

// TestGetPresetByName_validPresets verifies that GetPresetByName correctly
// returns the expected preset for all valid preset names.
func TestGetPresetByName_validPresets(t *testing.T) {
	for _, name := range []string{"lite", "network", "bulk", "default"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := GetPresetByName(name)
			require.NoError(t, err)
			require.Equal(t, name, cfg.Name)
			require.Positive(t, cfg.ReaderCapacity)
			require.Positive(t, cfg.WriterCapacity)
		})
	}
}

// TestGetPresetByName_invalidPreset verifies that GetPresetByName returns
// an error for unrecognized preset names.
func TestGetPresetByName_invalidPreset(t *testing.T) {
	for _, name := range []string{"unknown", "", "LITE", "Bulk"} {
		t.Run(name, func(t *testing.T) {
			_, err := GetPresetByName(name)
			require.Error(t, err)
			require.Contains(t, err.Error(), "valid:")
		})
	}
}

// TestApplyPreset verifies full and partial merges.
func TestApplyPreset(t *testing.T) {
	t.Run("full override", func(t *testing.T) {
		target := PresetConfig{Name: "custom", ReaderCapacity: 100, WriterCapacity: 200}
		ApplyPreset(&target, LitePreset())
		require.Equal(t, LitePreset(), target)
	})

	t.Run("partial override", func(t *testing.T) {
		target := DefaultPreset()
		ApplyPreset(&target, PresetConfig{WriterCapacity: 2048})

		require.Equal(t, "default", target.Name, "empty name must not override")
		require.Equal(t, 4096, target.ReaderCapacity, "zero size must not override")
		require.Equal(t, 2048, target.WriterCapacity)
	})
}
