package nbt

import "encoding/binary"

// Encode serializes a root Tag (which must be TagCompound) into the network's
// unnamed-root form: the usual TAG_Compound name field is elided, so the wire form
// is just the compound's body (name/type/payload entries) terminated by TAG_End.
func Encode(root Tag) []byte {
	var buf []byte
	buf = encodeCompoundBody(buf, root.Compound)
	return buf
}

func encodeNamedTag(buf []byte, name string, tag Tag) []byte {
	buf = append(buf, byte(tag.Type))
	buf = encodeModifiedUTF8(buf, name)
	return encodePayload(buf, tag)
}

func encodeCompoundBody(buf []byte, entries []NamedTag) []byte {
	for _, e := range entries {
		buf = encodeNamedTag(buf, e.Name, e.Tag)
	}
	buf = append(buf, byte(TagEnd))
	return buf
}

func encodePayload(buf []byte, tag Tag) []byte {
	switch tag.Type {
	case TagByte:
		return append(buf, byte(tag.Byte))
	case TagShort:
		return appendUint16(buf, uint16(tag.Short))
	case TagInt:
		return appendUint32(buf, uint32(tag.Int))
	case TagLong:
		return appendUint64(buf, uint64(tag.Long))
	case TagFloat:
		return appendUint32(buf, float32bits(tag.Float))
	case TagDouble:
		return appendUint64(buf, float64bits(tag.Double))
	case TagByteArray:
		buf = appendUint32(buf, uint32(len(tag.ByteArray)))
		for _, v := range tag.ByteArray {
			buf = append(buf, byte(v))
		}
		return buf
	case TagString:
		return encodeModifiedUTF8(buf, tag.String)
	case TagList:
		buf = append(buf, byte(tag.ListType))
		buf = appendUint32(buf, uint32(len(tag.List)))
		for _, entry := range tag.List {
			buf = encodePayload(buf, entry)
		}
		return buf
	case TagCompound:
		return encodeCompoundBody(buf, tag.Compound)
	case TagIntArray:
		buf = appendUint32(buf, uint32(len(tag.IntArray)))
		for _, v := range tag.IntArray {
			buf = appendUint32(buf, uint32(v))
		}
		return buf
	case TagLongArray:
		buf = appendUint32(buf, uint32(len(tag.LongArray)))
		for _, v := range tag.LongArray {
			buf = appendUint64(buf, uint64(v))
		}
		return buf
	default:
		return buf
	}
}

func appendUint16(buf []byte, v uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return append(buf, b[:]...)
}

func appendUint32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

// encodeModifiedUTF8 writes a u16-BE length prefix followed by the string bytes.
// Registry content is plain ASCII/UTF-8 in practice, so standard UTF-8 encoding is
// used rather than the full CESU-8-like modified form Java's NBT spec allows.
func encodeModifiedUTF8(buf []byte, s string) []byte {
	buf = appendUint16(buf, uint16(len(s)))
	return append(buf, s...)
}
