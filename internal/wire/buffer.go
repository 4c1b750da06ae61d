package wire

// Encoder appends wire-format bytes to an internal buffer. It offers no method
// that writes at an earlier position; Bytes returns the buffer itself, not a copy.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an Encoder with an empty buffer.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded bytes accumulated so far.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len reports the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

func (e *Encoder) writeByte(b byte) {
	e.buf = append(e.buf, b)
}

func (e *Encoder) write(b []byte) {
	e.buf = append(e.buf, b...)
}

// Decoder consumes wire-format bytes from a fixed byte slice, advancing a cursor.
// Every read is bounded by the remaining length; raw reads return sub-slices of
// the input rather than copies.
type Decoder struct {
	buf []byte
	pos int
}

// NewDecoder returns a Decoder reading from b.
func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

// Remaining reports how many bytes are left to decode.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

func (d *Decoder) readByte() (byte, error) {
	if d.Remaining() < 1 {
		return 0, ErrInsufficientData
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *Decoder) read(n int) ([]byte, error) {
	if d.Remaining() < n {
		return nil, ErrInsufficientData
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}
