package protocol

import "mc-protocol-server/internal/wire"

const idHandshake int32 = 0x00

// HandshakePacket is the first packet of every connection (spec.md §4.3). Its
// next_state field drives the only Handshake-state transition (spec.md §4.4).
type HandshakePacket struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       ConnectionState
}

func (p *HandshakePacket) ID() int32 { return idHandshake }

func (p *HandshakePacket) Decode(d *wire.Decoder) error {
	v, err := d.ReadVarInt()
	if err != nil {
		return err
	}
	p.ProtocolVersion = v

	addr, err := d.ReadString()
	if err != nil {
		return err
	}
	p.ServerAddress = addr

	port, err := d.ReadUint16()
	if err != nil {
		return err
	}
	p.ServerPort = port

	next, err := d.ReadVarInt()
	if err != nil {
		return err
	}
	p.NextState = StateFromID(next)
	return nil
}

func (p *HandshakePacket) Encode(e *wire.Encoder) {
	e.WriteVarInt(p.ProtocolVersion)
	e.WriteString(p.ServerAddress)
	e.WriteUint16(p.ServerPort)
	e.WriteVarInt(int32(p.NextState))
}

func init() {
	registerServerbound(Handshake, idHandshake, "Handshake", func() ServerboundPacket { return &HandshakePacket{} })
}
