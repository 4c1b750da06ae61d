// Package registry builds the fixed burst of RegistryData packets the server
// sends during Configuration (spec.md §4.5): eight game-content registries, each a
// deterministic NBT document built from in-memory constants (spec.md §6 "Persisted
// state: None").
package registry

import (
	"mc-protocol-server/internal/nbt"
	"mc-protocol-server/internal/protocol"
)

// entry is one named NBT document destined for a single RegistryEntry.
type entry struct {
	id   string
	data nbt.Tag
}

// table pairs a registry id with the entries it carries, in the emission order
// spec.md §4.5 specifies.
type table struct {
	registryID string
	entries    []entry
}

func tables() []table {
	return []table{
		{registryID: "minecraft:worldgen/biome", entries: biomeEntries()},
		{registryID: "minecraft:chat_type", entries: chatTypeEntries()},
		{registryID: "minecraft:trim_pattern", entries: trimPatternEntries()},
		{registryID: "minecraft:trim_material", entries: trimMaterialEntries()},
		{registryID: "minecraft:wolf_variant", entries: wolfVariantEntries()},
		{registryID: "minecraft:dimension_type", entries: dimensionTypeEntries()},
		{registryID: "minecraft:damage_type", entries: damageTypeEntries()},
		{registryID: "minecraft:banner_pattern", entries: bannerPatternEntries()},
	}
}

// Burst returns the ordered RegistryData packets the Configuration phase ships,
// followed by FinishConfiguration (spec.md §4.4, §4.5). Calling Burst twice
// produces byte-identical NBT payloads (spec.md §8 idempotence).
func Burst() []*protocol.RegistryDataPacket {
	tbls := tables()
	packets := make([]*protocol.RegistryDataPacket, 0, len(tbls))
	for _, t := range tbls {
		packetEntries := make([]protocol.RegistryEntry, 0, len(t.entries))
		for _, e := range t.entries {
			packetEntries = append(packetEntries, protocol.RegistryEntry{
				EntryID: e.id,
				HasData: true,
				Data:    e.data,
			})
		}
		packets = append(packets, &protocol.RegistryDataPacket{
			RegistryID: t.registryID,
			Entries:    packetEntries,
		})
	}
	return packets
}
