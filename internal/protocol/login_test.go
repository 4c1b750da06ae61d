package protocol

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mc-protocol-server/internal/wire"
)

func TestLoginStartRoundTrip(t *testing.T) {
	original := &LoginStartPacket{Username: "alice", UUID: uuid.New()}
	e := wire.NewEncoder()
	original.Encode(e)

	decoded := &LoginStartPacket{}
	require.NoError(t, decoded.Decode(wire.NewDecoder(e.Bytes())))
	require.Equal(t, original, decoded)
}

func TestLoginSuccessRoundTripWithProperties(t *testing.T) {
	sig := "deadbeef"
	original := &LoginSuccessPacket{
		UUID:     uuid.New(),
		Username: "alice",
		Properties: []Property{
			{Name: "textures", Value: "base64data", Signed: true, Signature: sig},
			{Name: "unsigned", Value: "x", Signed: false},
		},
		StrictErrorHandling: true,
	}

	e := wire.NewEncoder()
	original.Encode(e)

	decoded := &LoginSuccessPacket{}
	require.NoError(t, decoded.Decode(wire.NewDecoder(e.Bytes())))
	require.Equal(t, original, decoded)
}

func TestPropertySignatureOmittedWhenUnsigned(t *testing.T) {
	p := Property{Name: "n", Value: "v", Signed: false, Signature: "should not be written"}
	e := wire.NewEncoder()
	encodeProperty(e, p)

	decoded, err := decodeProperty(wire.NewDecoder(e.Bytes()))
	require.NoError(t, err)
	require.Equal(t, "", decoded.Signature)
	require.False(t, decoded.Signed)
}

func TestLoginAcknowledgedHasNoFields(t *testing.T) {
	p := &LoginAcknowledgedPacket{}
	require.NoError(t, p.Decode(wire.NewDecoder(nil)))
	require.Equal(t, idLoginAcknowledged, p.ID())
}

func TestLoginDisconnectEncodesReason(t *testing.T) {
	p := &LoginDisconnectPacket{Reason: `{"text":"banned"}`}
	e := wire.NewEncoder()
	p.Encode(e)

	d := wire.NewDecoder(e.Bytes())
	s, err := d.ReadString()
	require.NoError(t, err)
	require.Equal(t, p.Reason, s)
}

func TestValidUsernameAcceptsOrdinaryNames(t *testing.T) {
	require.True(t, ValidUsername("alice"))
	require.True(t, ValidUsername("Steve_123"))
	require.True(t, ValidUsername("abc"))
	require.True(t, ValidUsername("sixteen_chars_ok"))
}

func TestValidUsernameRejectsOutOfBounds(t *testing.T) {
	require.False(t, ValidUsername(""))
	require.False(t, ValidUsername("ab"))
	require.False(t, ValidUsername("seventeen_chars_x"))
}

func TestValidUsernameRejectsDisallowedCharacters(t *testing.T) {
	require.False(t, ValidUsername("alice smith"))
	require.False(t, ValidUsername("alice:smith"))
	require.False(t, ValidUsername("naïve"))
}
