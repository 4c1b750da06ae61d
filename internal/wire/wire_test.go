package wire

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPositionRoundTrip(t *testing.T) {
	for x := int32(-33554432); x <= 33554431; x += 7919 {
		for y := int32(-2048); y <= 2047; y += 257 {
			p := Position{X: x, Y: y, Z: -x / 3}
			got := UnpackPosition(p.Pack())
			require.Equal(t, p, got)
		}
	}
}

func TestPositionExample(t *testing.T) {
	p := Position{X: 1, Y: 2, Z: 3}
	require.Equal(t, int64(0x0000004000003002), p.Pack())

	got := UnpackPosition(p.Pack())
	require.Equal(t, p, got)
}

func TestStringRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.WriteString("127.0.0.1")
	d := NewDecoder(e.Bytes())
	got, err := d.ReadString()
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1", got)
}

func TestStringBadUTF8(t *testing.T) {
	e := NewEncoder()
	e.WriteVarInt(3)
	e.WriteBytes([]byte{0xff, 0xfe, 0xfd})
	d := NewDecoder(e.Bytes())
	_, err := d.ReadString()
	require.ErrorIs(t, err, ErrBadUTF8)
}

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()
	e := NewEncoder()
	e.WriteUUID(id)
	require.Equal(t, 16, e.Len())

	d := NewDecoder(e.Bytes())
	got, err := d.ReadUUID()
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestIdentifierDefaultNamespace(t *testing.T) {
	id := NewIdentifier("worldgen/biome")
	require.Equal(t, DefaultNamespace, id.Namespace)
	require.Equal(t, "worldgen/biome", id.Path)
	require.Equal(t, "minecraft:worldgen/biome", id.String())
}

func TestIdentifierRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.WriteIdentifier(NewIdentifier("minecraft:damage_type"))
	d := NewDecoder(e.Bytes())
	got, err := d.ReadIdentifier()
	require.NoError(t, err)
	require.Equal(t, "minecraft", got.Namespace)
	require.Equal(t, "damage_type", got.Path)
}

func TestIdentifierRejectsSlashInNamespace(t *testing.T) {
	id := Identifier{Namespace: "a/b", Path: "c"}
	require.False(t, id.Valid())
}

func TestArrayRoundTrip(t *testing.T) {
	e := NewEncoder()
	WriteArray(e, []string{"a", "bb", "ccc"}, (*Encoder).WriteString)
	d := NewDecoder(e.Bytes())
	got, err := ReadArray(d, (*Decoder).ReadString)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "bb", "ccc"}, got)
}

func TestOptionalGuard(t *testing.T) {
	e := NewEncoder()
	e.WriteBool(false)
	WriteOptional(e, false, "unused", (*Encoder).WriteString)

	d := NewDecoder(e.Bytes())
	present, err := d.ReadBool()
	require.NoError(t, err)
	require.False(t, present)

	val, err := ReadOptional(d, present, (*Decoder).ReadString)
	require.NoError(t, err)
	require.Equal(t, "", val)
}

func TestPrimitivesRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.WriteBool(true)
	e.WriteUint8(200)
	e.WriteInt8(-5)
	e.WriteUint16(60000)
	e.WriteInt32(-123456)
	e.WriteInt64(-9000000000)
	e.WriteFloat32(3.5)
	e.WriteFloat64(2.25)

	d := NewDecoder(e.Bytes())
	b, _ := d.ReadBool()
	u8, _ := d.ReadUint8()
	i8, _ := d.ReadInt8()
	u16, _ := d.ReadUint16()
	i32, _ := d.ReadInt32()
	i64, _ := d.ReadInt64()
	f32, _ := d.ReadFloat32()
	f64, _ := d.ReadFloat64()

	require.True(t, b)
	require.Equal(t, uint8(200), u8)
	require.Equal(t, int8(-5), i8)
	require.Equal(t, uint16(60000), u16)
	require.Equal(t, int32(-123456), i32)
	require.Equal(t, int64(-9000000000), i64)
	require.Equal(t, float32(3.5), f32)
	require.Equal(t, float64(2.25), f64)
}
