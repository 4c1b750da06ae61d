package wire

// Position packs a signed (x, y, z) triple into a single i64: 26 bits for x, 26 bits
// for z, 12 bits for y.
type Position struct {
	X, Z int32 // 26-bit signed
	Y    int32 // 12-bit signed
}

// Pack encodes the position into its wire i64 form.
func (p Position) Pack() int64 {
	x := int64(p.X) & 0x3FFFFFF
	z := int64(p.Z) & 0x3FFFFFF
	y := int64(p.Y) & 0xFFF
	return (x << 38) | (z << 12) | y
}

// UnpackPosition decodes a wire i64 back into a Position, sign-extending each field.
func UnpackPosition(v int64) Position {
	x := int32(v >> 38)
	y := int32((v << 52) >> 52)
	z := int32((v << 26) >> 38)
	return Position{X: x, Y: y, Z: z}
}

// WritePosition writes the packed position as a big-endian i64.
func (e *Encoder) WritePosition(p Position) {
	e.WriteInt64(p.Pack())
}

// ReadPosition reads a big-endian i64 and unpacks it into a Position.
func (d *Decoder) ReadPosition() (Position, error) {
	v, err := d.ReadInt64()
	if err != nil {
		return Position{}, err
	}
	return UnpackPosition(v), nil
}
