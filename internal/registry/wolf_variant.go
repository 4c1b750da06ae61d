package registry

import "mc-protocol-server/internal/nbt"

// wolfVariantEntries builds minecraft:wolf_variant (spec.md §4.5 item 5):
// wild_texture, tame_texture, angry_texture, biomes. Grounded on original_source's
// WolfVariant (protocol-registry/src/wolf.rs).
func wolfVariantEntries() []entry {
	pale := nbt.NewCompound().
		Put("wild_texture", nbt.String("minecraft:entity/wolf/wolf")).
		Put("tame_texture", nbt.String("minecraft:entity/wolf/wolf_tame")).
		Put("angry_texture", nbt.String("minecraft:entity/wolf/wolf_angry")).
		Put("biomes", nbt.String("minecraft:plains")).
		Build()

	return []entry{
		{id: "minecraft:pale", data: pale},
	}
}
