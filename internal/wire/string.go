package wire

import "unicode/utf8"

// MaxStringChars is the protocol's declared maximum string length, in UTF-8 characters.
const MaxStringChars = 32767

// maxStringBytes is the byte-length policy spec.md §3 describes: 4 bytes per character
// in the worst case, used to bound the length prefix before any allocation happens.
const maxStringBytes = MaxStringChars * 4

// WriteString writes a VarInt-length-prefixed UTF-8 string, no terminator.
func (e *Encoder) WriteString(s string) {
	e.WriteVarInt(int32(len(s)))
	e.write([]byte(s))
}

// ReadString reads a VarInt-length-prefixed UTF-8 string. Invalid UTF-8 or a
// declared length beyond the policy bound is a fatal decode error.
func (d *Decoder) ReadString() (string, error) {
	n, err := d.ReadVarInt()
	if err != nil {
		return "", err
	}
	if n < 0 || int(n) > maxStringBytes {
		return "", ErrStringTooLong
	}
	b, err := d.read(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrBadUTF8
	}
	return string(b), nil
}
