package registry

import "mc-protocol-server/internal/nbt"

// biomeEntries builds the minecraft:worldgen/biome registry (spec.md §4.5 item 1):
// at least one biome with has_precipitation, temperature, downfall, and an effects
// sub-compound carrying four colors. Grounded on original_source's Biome/BiomeEffects
// (protocol-registry/src/biome.rs).
func biomeEntries() []entry {
	plains := nbt.NewCompound().
		Put("has_precipitation", nbt.Bool(true)).
		Put("temperature", nbt.Float(0.8)).
		Put("downfall", nbt.Float(0.4)).
		Put("effects", nbt.NewCompound().
			Put("fog_color", nbt.Int(12638463)).
			Put("water_color", nbt.Int(4159204)).
			Put("water_fog_color", nbt.Int(329011)).
			Put("sky_color", nbt.Int(7907327)).
			Build()).
		Build()

	return []entry{
		{id: "minecraft:plains", data: plains},
	}
}
