package wire

import (
	"encoding/binary"
	"math"
)

// WriteBool writes a single 0x00/0x01 byte.
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.writeByte(1)
	} else {
		e.writeByte(0)
	}
}

// ReadBool reads a single byte as a boolean; any non-zero byte is true.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.readByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// WriteUint8 writes a single byte.
func (e *Encoder) WriteUint8(v uint8) {
	e.writeByte(v)
}

// ReadUint8 reads a single byte.
func (d *Decoder) ReadUint8() (uint8, error) {
	return d.readByte()
}

// WriteInt8 writes a single signed byte.
func (e *Encoder) WriteInt8(v int8) {
	e.writeByte(byte(v))
}

// ReadInt8 reads a single signed byte.
func (d *Decoder) ReadInt8() (int8, error) {
	b, err := d.readByte()
	return int8(b), err
}

// WriteUint16 writes a big-endian u16.
func (e *Encoder) WriteUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	e.write(b[:])
}

// ReadUint16 reads a big-endian u16.
func (d *Decoder) ReadUint16() (uint16, error) {
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// WriteInt32 writes a big-endian i32.
func (e *Encoder) WriteInt32(v int32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	e.write(b[:])
}

// ReadInt32 reads a big-endian i32.
func (d *Decoder) ReadInt32() (int32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

// WriteInt64 writes a big-endian i64.
func (e *Encoder) WriteInt64(v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	e.write(b[:])
}

// ReadInt64 reads a big-endian i64.
func (d *Decoder) ReadInt64() (int64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// WriteFloat32 writes a big-endian IEEE-754 float32.
func (e *Encoder) WriteFloat32(v float32) {
	e.WriteInt32(int32(math.Float32bits(v)))
}

// ReadFloat32 reads a big-endian IEEE-754 float32.
func (d *Decoder) ReadFloat32() (float32, error) {
	bits, err := d.ReadInt32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

// WriteFloat64 writes a big-endian IEEE-754 float64.
func (e *Encoder) WriteFloat64(v float64) {
	e.WriteInt64(int64(math.Float64bits(v)))
}

// ReadFloat64 reads a big-endian IEEE-754 float64.
func (d *Decoder) ReadFloat64() (float64, error) {
	bits, err := d.ReadInt64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

// WriteBytes writes a raw byte slice with no length prefix.
func (e *Encoder) WriteBytes(b []byte) {
	e.write(b)
}

// ReadBytes reads exactly n raw bytes with no length prefix.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	return d.read(n)
}
