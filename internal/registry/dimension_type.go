package registry

import "mc-protocol-server/internal/nbt"

// dimensionTypeEntries builds minecraft:dimension_type (spec.md §4.5 item 6): 18
// numeric/boolean attributes. Grounded on original_source's DimensionType
// (protocol-registry/src/dimension_type.rs); coordinate_scale is serialized as a
// Double there despite being an f32 field, which this builder preserves.
func dimensionTypeEntries() []entry {
	overworld := nbt.NewCompound().
		Put("fixed_time", nbt.Long(6000)).
		Put("has_skylight", nbt.Bool(true)).
		Put("has_ceiling", nbt.Bool(false)).
		Put("ultrawarm", nbt.Bool(false)).
		Put("natural", nbt.Bool(true)).
		Put("coordinate_scale", nbt.Double(1.0)).
		Put("bed_works", nbt.Bool(true)).
		Put("respawn_anchor_works", nbt.Bool(false)).
		Put("min_y", nbt.Int(-64)).
		Put("height", nbt.Int(384)).
		Put("logical_height", nbt.Int(384)).
		Put("infiniburn", nbt.String("#minecraft:infiniburn_overworld")).
		Put("effects", nbt.String("minecraft:overworld")).
		Put("ambient_light", nbt.Float(0.0)).
		Put("piglin_safe", nbt.Bool(false)).
		Put("has_raids", nbt.Bool(true)).
		Put("monster_spawn_light_level", nbt.Int(0)).
		Put("monster_spawn_block_light_limit", nbt.Int(0)).
		Build()

	return []entry{
		{id: "minecraft:overworld", data: overworld},
	}
}
