package registry

import "mc-protocol-server/internal/nbt"

// trimPatternEntries builds minecraft:trim_pattern (spec.md §4.5 item 3): asset_id,
// template_item, description, decal. Grounded on original_source's ArmorTrimPattern
// (protocol-registry/src/armor_trim.rs).
func trimPatternEntries() []entry {
	sentry := nbt.NewCompound().
		Put("asset_id", nbt.String("minecraft:sentry")).
		Put("template_item", nbt.String("minecraft:sentry_armor_trim_smithing_template")).
		Put("description", nbt.NewCompound().
			Put("translate", nbt.String("trim_pattern.minecraft.sentry")).
			Build()).
		Put("decal", nbt.Byte(0)).
		Build()

	return []entry{
		{id: "minecraft:sentry", data: sentry},
	}
}

// trimMaterialEntries builds minecraft:trim_material (spec.md §4.5 item 4):
// asset_name, ingredient, item_model_index, description. Grounded on
// original_source's ArmorTrimMaterial (protocol-registry/src/armor_trim.rs).
func trimMaterialEntries() []entry {
	quartz := nbt.NewCompound().
		Put("asset_name", nbt.String("quartz")).
		Put("ingredient", nbt.String("minecraft:quartz")).
		Put("item_model_index", nbt.Float(0.1)).
		Put("description", nbt.NewCompound().
			Put("translate", nbt.String("trim_material.minecraft.quartz")).
			Build()).
		Build()

	return []entry{
		{id: "minecraft:quartz", data: quartz},
	}
}
