package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpecification(t *testing.T) {
	t.Run("parses labeled form with all attributes", func(t *testing.T) {
		spec := ParseSpecification("CPU: Intel i5-1240P, RAM: 16GB, ROM: 512GB, Card: RTX 3050")

		assert.Equal(t, "Intel i5-1240P", spec.CPU)
		assert.Equal(t, "16GB", spec.RAM)
		assert.Equal(t, "512GB", spec.ROM)
		assert.Equal(t, "RTX 3050", spec.Card)
	})

	t.Run("labeled form accepts any subset in any order", func(t *testing.T) {
		spec := ParseSpecification("RAM: 8GB, CPU: Ryzen 5")

		assert.Equal(t, "Ryzen 5", spec.CPU)
		assert.Equal(t, "8GB", spec.RAM)
		assert.Empty(t, spec.ROM)
		assert.Empty(t, spec.Card)
	})

	t.Run("labeled keys are case-insensitive", func(t *testing.T) {
		spec := ParseSpecification("cpu: Intel i7, ram: 32GB, rom: 1TB, card: Iris Xe")

		assert.Equal(t, "Intel i7", spec.CPU)
		assert.Equal(t, "32GB", spec.RAM)
		assert.Equal(t, "1TB", spec.ROM)
		assert.Equal(t, "Iris Xe", spec.Card)
	})

	t.Run("labeled form ignores unknown keys", func(t *testing.T) {
		spec := ParseSpecification("CPU: Intel i5, Screen: 14 inch")

		assert.Equal(t, "Intel i5", spec.CPU)
		assert.Empty(t, spec.RAM)
	})

	t.Run("parses positional form with slash separator", func(t *testing.T) {
		spec := ParseSpecification("Intel i5-1240P / 16GB / 512GB / RTX 3050")

		assert.Equal(t, "Intel i5-1240P", spec.CPU)
		assert.Equal(t, "16GB", spec.RAM)
		assert.Equal(t, "512GB", spec.ROM)
		assert.Equal(t, "RTX 3050", spec.Card)
	})

	t.Run("parses positional form with comma separator", func(t *testing.T) {
		spec := ParseSpecification("Ryzen 7, 32GB, 1TB, Radeon")

		assert.Equal(t, "Ryzen 7", spec.CPU)
		assert.Equal(t, "32GB", spec.RAM)
		assert.Equal(t, "1TB", spec.ROM)
		assert.Equal(t, "Radeon", spec.Card)
	})

	t.Run("positional form tolerates missing trailing attributes", func(t *testing.T) {
		spec := ParseSpecification("Intel i5 / 8GB")

		assert.Equal(t, "Intel i5", spec.CPU)
		assert.Equal(t, "8GB", spec.RAM)
		assert.Empty(t, spec.ROM)
		assert.Empty(t, spec.Card)
	})

	t.Run("empty and whitespace input yield an empty specification", func(t *testing.T) {
		assert.True(t, ParseSpecification("").IsEmpty())
		assert.True(t, ParseSpecification("   ").IsEmpty())
	})
}

func TestSpecificationNormalize(t *testing.T) {
	t.Run("both input forms normalize to the same string", func(t *testing.T) {
		labeled := ParseSpecification("CPU: Intel i5, RAM: 16GB, ROM: 512GB, Card: RTX 3050")
		positional := ParseSpecification("Intel i5 / 16GB / 512GB / RTX 3050")

		assert.Equal(t, "Intel i5 / 16GB / 512GB / RTX 3050", labeled.Normalize())
		assert.Equal(t, labeled.Normalize(), positional.Normalize())
	})

	t.Run("absent attributes stay absent in the canonical form", func(t *testing.T) {
		spec := ParseSpecification("CPU: Intel i5, RAM: 8GB")

		assert.Equal(t, "Intel i5 / 8GB /  / ", spec.Normalize())
	})
}

func TestSpecificationMatches(t *testing.T) {
	spec := ParseSpecification("CPU: Intel i5, RAM: 16GB, ROM: 512GB, Card: RTX 3050")

	t.Run("matches its own normalized form", func(t *testing.T) {
		assert.True(t, spec.Matches("Intel i5 / 16GB / 512GB / RTX 3050"))
	})

	t.Run("matches across input forms", func(t *testing.T) {
		assert.True(t, spec.Matches("Card: RTX 3050, ROM: 512GB, RAM: 16GB, CPU: Intel i5"))
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		assert.True(t, spec.Matches("INTEL I5 / 16gb / 512gb / rtx 3050"))
	})

	t.Run("rejects a different configuration", func(t *testing.T) {
		assert.False(t, spec.Matches("Intel i5 / 8GB / 512GB / RTX 3050"))
	})
}

func TestSpecificationAttributes(t *testing.T) {
	t.Run("omits absent attributes", func(t *testing.T) {
		attrs := ParseSpecification("CPU: Intel i5, RAM: 8GB").Attributes()

		assert.Equal(t, map[string]string{"cpu": "Intel i5", "ram": "8GB"}, attrs)
	})

	t.Run("includes all four when present", func(t *testing.T) {
		attrs := ParseSpecification("Intel i5 / 16GB / 512GB / RTX 3050").Attributes()

		assert.Len(t, attrs, 4)
		assert.Equal(t, "RTX 3050", attrs["card"])
	})
}
