package registry

import "mc-protocol-server/internal/nbt"

// chatTypeEntries builds minecraft:chat_type (spec.md §4.5 item 2): one entry with
// chat and narration decoration sub-compounds. Grounded on original_source's
// ChatType/ChatDecoration (protocol-registry/src/chat_type.rs).
func chatTypeEntries() []entry {
	decoration := func(name, translationKey string, parameters ...string) nbt.Tag {
		return nbt.NewCompound().
			Put("name", nbt.String(name)).
			Put("translation_key", nbt.String(translationKey)).
			Put("parameters", nbt.StringList(parameters...)).
			Build()
	}

	chat := nbt.NewCompound().
		Put("chat", decoration("chat", "chat.type.text", "sender", "content")).
		Put("narration", decoration("narration", "chat.type.text.narrate", "sender", "content")).
		Build()

	return []entry{
		{id: "minecraft:chat", data: chat},
	}
}
