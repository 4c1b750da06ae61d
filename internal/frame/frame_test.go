package frame

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUncompressedRoundTrip(t *testing.T) {
	cfg := NewConfig(-1)
	f := Frame{PacketID: 0x02, Payload: []byte("hello")}
	encoded := Encode(f, cfg)

	decoded, consumed, err := Decode(encoded, cfg)
	require.NoError(t, err)
	require.Equal(t, len(encoded), consumed)
	require.Equal(t, f, decoded)
}

func TestCompressedNoOpBelowThreshold(t *testing.T) {
	cfg := NewConfig(256)
	f := Frame{PacketID: 0x01, Payload: bytes.Repeat([]byte{0xAB}, 8)}
	encoded := Encode(f, cfg)

	// dataLength VarInt(0) must appear right after the outer length, i.e. no zlib
	// header (0x78 ..) follows it — spec.md §8 scenario 5.
	require.Equal(t, byte(0x00), encoded[1])

	decoded, _, err := Decode(encoded, cfg)
	require.NoError(t, err)
	require.Equal(t, f, decoded)

	require.Less(t, len(encoded), len(f.Payload)+10)
}

func TestCompressedAboveThreshold(t *testing.T) {
	cfg := NewConfig(16)
	big := strings.Repeat("registry-payload-filler ", 64)
	f := Frame{PacketID: 0x07, Payload: []byte(big)}
	encoded := Encode(f, cfg)

	decoded, consumed, err := Decode(encoded, cfg)
	require.NoError(t, err)
	require.Equal(t, len(encoded), consumed)
	require.Equal(t, f, decoded)
}

func TestIncompleteFrameAsksForMore(t *testing.T) {
	cfg := NewConfig(-1)
	f := Frame{PacketID: 0x00, Payload: []byte("abcdefgh")}
	encoded := Encode(f, cfg)

	_, _, err := Decode(encoded[:len(encoded)-2], cfg)
	require.ErrorIs(t, err, ErrIncomplete)
}

func TestFramingIsNoOpOnPayloadAtInfiniteThreshold(t *testing.T) {
	cfg := NewConfig(1 << 30)
	f := Frame{PacketID: 0x03, Payload: []byte("unchanged")}
	encoded := Encode(f, cfg)
	decoded, _, err := Decode(encoded, cfg)
	require.NoError(t, err)
	require.Equal(t, f.Payload, decoded.Payload)
}

func TestCompressionMismatchIsFatal(t *testing.T) {
	body := encodeCompressedBody([]byte{0x00, 1, 2, 3, 4, 5}, 4)
	// Corrupt the declared data length (originally 6) so it no longer matches the
	// inflated size.
	corrupted := append([]byte{0x63}, body[1:]...)
	_, err := decodeCompressedBody(corrupted)
	require.ErrorIs(t, err, ErrCompressionMismatch)
}
