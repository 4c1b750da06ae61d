package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mc-protocol-server/internal/wire"
)

func TestHandshakeRoundTrip(t *testing.T) {
	original := &HandshakePacket{
		ProtocolVersion: 766,
		ServerAddress:   "localhost",
		ServerPort:      25565,
		NextState:       Status,
	}

	e := wire.NewEncoder()
	original.Encode(e)

	decoded := &HandshakePacket{}
	require.NoError(t, decoded.Decode(wire.NewDecoder(e.Bytes())))
	require.Equal(t, original, decoded)
}

func TestHandshakeUnknownNextStateCollapsesToHandshake(t *testing.T) {
	e := wire.NewEncoder()
	e.WriteVarInt(766)
	e.WriteString("localhost")
	e.WriteUint16(25565)
	e.WriteVarInt(99)

	decoded := &HandshakePacket{}
	require.NoError(t, decoded.Decode(wire.NewDecoder(e.Bytes())))
	require.Equal(t, Handshake, decoded.NextState)
}

func TestDecodeServerboundDispatchesHandshake(t *testing.T) {
	e := wire.NewEncoder()
	e.WriteVarInt(766)
	e.WriteString("127.0.0.1")
	e.WriteUint16(25565)
	e.WriteVarInt(int32(Status))

	p, err := DecodeServerbound(Handshake, idHandshake, e.Bytes())
	require.NoError(t, err)
	hs, ok := p.(*HandshakePacket)
	require.True(t, ok)
	require.Equal(t, Status, hs.NextState)
}

func TestDecodeServerboundUnknownPacketIsNonFatal(t *testing.T) {
	_, err := DecodeServerbound(Status, 0x7F, nil)
	require.Error(t, err)
	var unknown *ErrUnknownPacket
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, Status, unknown.State)
}
