package protocol

import (
	"fmt"

	"mc-protocol-server/internal/wire"
)

// Packet is satisfied by every concrete packet type; ID reports its wire id within
// its (state, direction) namespace (spec.md §4.3: "each state has its own packet ID
// counter").
type Packet interface {
	ID() int32
}

// ServerboundPacket decodes its own field list from a payload buffer, in the
// declaration order spec.md §4.3's inventory table lists. Field encoding is strictly
// positional; there are no wire-format markers between fields.
type ServerboundPacket interface {
	Packet
	Decode(d *wire.Decoder) error
}

// ClientboundPacket encodes its own field list to a buffer, in declaration order.
type ClientboundPacket interface {
	Packet
	Encode(e *wire.Encoder)
}

// registryKey identifies one row of the packet table: a connection state plus a
// wire id, scoped within a single direction's table (spec.md §4.3).
type registryKey struct {
	state ConnectionState
	id    int32
}

type serverboundEntry struct {
	name string
	new  func() ServerboundPacket
}

// serverboundTable is the closed, declarative table spec.md §4.3 describes: it
// drives decode dispatch on (state, id) for every Serverbound packet.
var serverboundTable = map[registryKey]serverboundEntry{}

func registerServerbound(state ConnectionState, id int32, name string, new func() ServerboundPacket) {
	serverboundTable[registryKey{state: state, id: id}] = serverboundEntry{name: name, new: new}
}

// ErrUnknownPacket is returned by DecodeServerbound when no (state, id) entry exists for an
// incoming Serverbound packet. Per spec.md §4.4/§7 this is non-fatal: the caller
// should log and discard the payload, not terminate the connection.
type ErrUnknownPacket struct {
	State ConnectionState
	ID    int32
}

func (e *ErrUnknownPacket) Error() string {
	return fmt.Sprintf("protocol: no serverbound packet registered for state=%s id=0x%02x", e.State, e.ID)
}

// DecodeServerbound looks up (state, id) in the registry and, if found, decodes
// payload into a freshly constructed packet value. A missing entry returns
// *ErrUnknownPacket, which callers should treat as non-fatal (spec.md §4.4/§7); a
// decode error from a known packet's field list is fatal (spec.md §7 malformed frame).
func DecodeServerbound(state ConnectionState, id int32, payload []byte) (ServerboundPacket, error) {
	entry, ok := serverboundTable[registryKey{state: state, id: id}]
	if !ok {
		return nil, &ErrUnknownPacket{State: state, ID: id}
	}
	p := entry.new()
	d := wire.NewDecoder(payload)
	if err := p.Decode(d); err != nil {
		return nil, fmt.Errorf("protocol: decoding %s: %w", entry.name, err)
	}
	return p, nil
}

// EncodeClientbound serializes a ClientboundPacket's id and field list, in the
// layout the framing layer expects: id first, then fields in declaration order.
func EncodeClientbound(p ClientboundPacket) (id int32, payload []byte) {
	e := wire.NewEncoder()
	p.Encode(e)
	return p.ID(), e.Bytes()
}
