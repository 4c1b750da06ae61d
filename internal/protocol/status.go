package protocol

import "mc-protocol-server/internal/wire"

const (
	idStatusRequest  int32 = 0x00
	idStatusResponse int32 = 0x00
	idPingRequest    int32 = 0x01
	idPingResponse   int32 = 0x01
)

// StatusRequestPacket carries no fields (spec.md §4.3).
type StatusRequestPacket struct{}

func (p *StatusRequestPacket) ID() int32                { return idStatusRequest }
func (p *StatusRequestPacket) Decode(d *wire.Decoder) error { return nil }

// StatusResponsePacket carries the server-list-ping JSON document.
type StatusResponsePacket struct {
	JSON string
}

func (p *StatusResponsePacket) ID() int32            { return idStatusResponse }
func (p *StatusResponsePacket) Encode(e *wire.Encoder) { e.WriteString(p.JSON) }

// PingRequestPacket echoes an arbitrary client-chosen payload.
type PingRequestPacket struct {
	Payload int64
}

func (p *PingRequestPacket) ID() int32 { return idPingRequest }
func (p *PingRequestPacket) Decode(d *wire.Decoder) error {
	v, err := d.ReadInt64()
	if err != nil {
		return err
	}
	p.Payload = v
	return nil
}

// PingResponsePacket returns PingRequestPacket.Payload unchanged.
type PingResponsePacket struct {
	Payload int64
}

func (p *PingResponsePacket) ID() int32            { return idPingResponse }
func (p *PingResponsePacket) Encode(e *wire.Encoder) { e.WriteInt64(p.Payload) }

func init() {
	registerServerbound(Status, idStatusRequest, "StatusRequest", func() ServerboundPacket { return &StatusRequestPacket{} })
	registerServerbound(Status, idPingRequest, "PingRequest", func() ServerboundPacket { return &PingRequestPacket{} })
}
