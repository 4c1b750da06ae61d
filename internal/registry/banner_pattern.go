package registry

import "mc-protocol-server/internal/nbt"

// bannerPatternEntries builds minecraft:banner_pattern (spec.md §4.5 item 8):
// asset_id, translation_key. Grounded on original_source's BannerPattern
// (protocol-registry/src/banner.rs).
func bannerPatternEntries() []entry {
	base := nbt.NewCompound().
		Put("asset_id", nbt.String("minecraft:base")).
		Put("translation_key", nbt.String("block.minecraft.banner.base")).
		Build()

	return []entry{
		{id: "minecraft:base", data: base},
	}
}
