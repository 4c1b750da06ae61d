package registry

import "mc-protocol-server/internal/nbt"

// damageTypeEntries builds minecraft:damage_type (spec.md §4.5 item 7): scaling,
// exhaustion, message_id. Grounded on original_source's DamageType
// (protocol-registry/src/damage_type.rs).
func damageTypeEntries() []entry {
	inFire := nbt.NewCompound().
		Put("scaling", nbt.String("when_caused_by_living_non_player")).
		Put("exhaustion", nbt.Float(0.1)).
		Put("message_id", nbt.String("inFire")).
		Build()

	return []entry{
		{id: "minecraft:in_fire", data: inFire},
	}
}
