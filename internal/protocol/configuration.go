package protocol

import (
	"mc-protocol-server/internal/nbt"
	"mc-protocol-server/internal/wire"
)

const (
	idRegistryData                   int32 = 0x07
	idFinishConfiguration            int32 = 0x03
	idConfigurationDisconnect        int32 = 0x02
	idAcknowledgeFinishConfiguration int32 = 0x03
)

// RegistryEntry is one element of RegistryData's entries array (spec.md §4.3):
// Data is present iff HasData is true.
type RegistryEntry struct {
	EntryID string
	HasData bool
	Data    nbt.Tag
}

func encodeRegistryEntry(e *wire.Encoder, entry RegistryEntry) {
	e.WriteString(entry.EntryID)
	e.WriteBool(entry.HasData)
	wire.WriteOptional(e, entry.HasData, entry.Data, func(e *wire.Encoder, t nbt.Tag) {
		e.WriteBytes(nbt.Encode(t))
	})
}

// RegistryDataPacket carries one registry's full entry set (spec.md §4.3, §4.6).
// The burst builder in internal/registry emits one of these per registry, in the
// fixed order spec.md §4.6 specifies.
type RegistryDataPacket struct {
	RegistryID string
	Entries    []RegistryEntry
}

func (p *RegistryDataPacket) ID() int32 { return idRegistryData }

func (p *RegistryDataPacket) Encode(e *wire.Encoder) {
	e.WriteString(p.RegistryID)
	wire.WriteArray(e, p.Entries, encodeRegistryEntry)
}

// FinishConfigurationPacket has no fields; the server sends it once the registry
// burst is complete (spec.md §4.4).
type FinishConfigurationPacket struct{}

func (p *FinishConfigurationPacket) ID() int32               { return idFinishConfiguration }
func (p *FinishConfigurationPacket) Encode(e *wire.Encoder)  {}

// AcknowledgeFinishConfigurationPacket has no fields; receiving it transitions
// Configuration -> Play (spec.md §4.4).
type AcknowledgeFinishConfigurationPacket struct{}

func (p *AcknowledgeFinishConfigurationPacket) ID() int32                    { return idAcknowledgeFinishConfiguration }
func (p *AcknowledgeFinishConfigurationPacket) Decode(d *wire.Decoder) error { return nil }

// ConfigurationDisconnectPacket is serverbound per spec.md §4.3's table; a client
// may send it to abandon Configuration early.
type ConfigurationDisconnectPacket struct {
	Reason string
}

func (p *ConfigurationDisconnectPacket) ID() int32 { return idConfigurationDisconnect }

func (p *ConfigurationDisconnectPacket) Decode(d *wire.Decoder) error {
	reason, err := d.ReadString()
	if err != nil {
		return err
	}
	p.Reason = reason
	return nil
}

func init() {
	registerServerbound(Configuration, idAcknowledgeFinishConfiguration, "AcknowledgeFinishConfiguration", func() ServerboundPacket {
		return &AcknowledgeFinishConfigurationPacket{}
	})
	registerServerbound(Configuration, idConfigurationDisconnect, "ConfigurationDisconnect", func() ServerboundPacket {
		return &ConfigurationDisconnectPacket{}
	})
}
