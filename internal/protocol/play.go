package protocol

import "mc-protocol-server/internal/wire"

const (
	idLoginPlay  int32 = 0x2B
	idGameEvent  int32 = 0x22
)

// LoginPlayPacket is the first Play packet, sent once immediately after
// AcknowledgeFinishConfiguration (spec.md §4.3, §4.4). Field order is positional
// and fixed.
type LoginPlayPacket struct {
	EntityID            int32
	IsHardcore           bool
	DimensionNames        []string
	MaxPlayers           int32
	ViewDistance         int32
	SimulationDistance   int32
	ReducedDebugInfo     bool
	EnableRespawnScreen  bool
	DoLimitedCrafting    bool
	DimensionType        int32
	DimensionName        string
	HashedSeed           int64
	GameMode             uint8
	PreviousGameMode     int8
	IsDebug              bool
	IsFlat               bool
	HasDeathLocation     bool
	DeathDimensionName   string
	DeathLocation        wire.Position
	PortalCooldown       int32
	EnforcesSecureChat   bool
}

func (p *LoginPlayPacket) ID() int32 { return idLoginPlay }

func (p *LoginPlayPacket) Encode(e *wire.Encoder) {
	e.WriteInt32(p.EntityID)
	e.WriteBool(p.IsHardcore)
	wire.WriteArray(e, p.DimensionNames, (*wire.Encoder).WriteString)
	e.WriteVarInt(p.MaxPlayers)
	e.WriteVarInt(p.ViewDistance)
	e.WriteVarInt(p.SimulationDistance)
	e.WriteBool(p.ReducedDebugInfo)
	e.WriteBool(p.EnableRespawnScreen)
	e.WriteBool(p.DoLimitedCrafting)
	e.WriteVarInt(p.DimensionType)
	e.WriteString(p.DimensionName)
	e.WriteInt64(p.HashedSeed)
	e.WriteUint8(p.GameMode)
	e.WriteInt8(p.PreviousGameMode)
	e.WriteBool(p.IsDebug)
	e.WriteBool(p.IsFlat)
	e.WriteBool(p.HasDeathLocation)
	wire.WriteOptional(e, p.HasDeathLocation, p.DeathDimensionName, (*wire.Encoder).WriteString)
	wire.WriteOptional(e, p.HasDeathLocation, p.DeathLocation, (*wire.Encoder).WritePosition)
	e.WriteVarInt(p.PortalCooldown)
	e.WriteBool(p.EnforcesSecureChat)
}

// GameEventPacket signals a miscellaneous world/client-state change; the server
// sends GameEvent 13 (start waiting for level chunks) with Value 0 immediately
// after LoginPlay (spec.md §4.4).
type GameEventPacket struct {
	Event uint8
	Value float32
}

func (p *GameEventPacket) ID() int32 { return idGameEvent }

func (p *GameEventPacket) Encode(e *wire.Encoder) {
	e.WriteUint8(p.Event)
	e.WriteFloat32(p.Value)
}
