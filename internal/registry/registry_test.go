package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mc-protocol-server/internal/nbt"
)

func TestBurstEmitsEightRegistriesInOrder(t *testing.T) {
	want := []string{
		"minecraft:worldgen/biome",
		"minecraft:chat_type",
		"minecraft:trim_pattern",
		"minecraft:trim_material",
		"minecraft:wolf_variant",
		"minecraft:dimension_type",
		"minecraft:damage_type",
		"minecraft:banner_pattern",
	}

	packets := Burst()
	require.Len(t, packets, len(want))
	for i, p := range packets {
		require.Equal(t, want[i], p.RegistryID)
		require.NotEmpty(t, p.Entries)
		for _, e := range p.Entries {
			require.True(t, e.HasData)
			require.NotEmpty(t, e.EntryID)
		}
	}
}

func TestBurstIsDeterministic(t *testing.T) {
	a := Burst()
	b := Burst()
	for i := range a {
		require.Equal(t, a[i].RegistryID, b[i].RegistryID)
		for j := range a[i].Entries {
			encA := nbt.Encode(a[i].Entries[j].Data)
			encB := nbt.Encode(b[i].Entries[j].Data)
			require.Equal(t, encA, encB)
		}
	}
}

func TestEveryEntryEncodesToANonTrivialCompound(t *testing.T) {
	for _, p := range Burst() {
		for _, e := range p.Entries {
			encoded := nbt.Encode(e.Data)
			// A non-empty compound is at least one named tag plus the TAG_End
			// terminator, i.e. more than a single byte.
			require.Greater(t, len(encoded), 1)
		}
	}
}
