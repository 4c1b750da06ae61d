package nbt

import (
	"encoding/binary"
	"fmt"
)

// decoder walks a byte slice left to right; it mirrors wire.Decoder but stays local
// to this package since NBT's length prefixes are u16 big-endian, not VarInt.
type decoder struct {
	buf []byte
	pos int
}

func (d *decoder) remaining() int { return len(d.buf) - d.pos }

func (d *decoder) readByte() (byte, error) {
	if d.remaining() < 1 {
		return 0, fmt.Errorf("nbt: unexpected end of data")
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) readN(n int) ([]byte, error) {
	if d.remaining() < n {
		return nil, fmt.Errorf("nbt: unexpected end of data")
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) readUint16() (uint16, error) {
	b, err := d.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (d *decoder) readUint32() (uint32, error) {
	b, err := d.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (d *decoder) readUint64() (uint64, error) {
	b, err := d.readN(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (d *decoder) readModifiedUTF8() (string, error) {
	n, err := d.readUint16()
	if err != nil {
		return "", err
	}
	b, err := d.readN(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses the network's unnamed-root NBT form: a sequence of named entries
// terminated by TAG_End, with no leading type byte or name for the root itself.
func Decode(data []byte) (Tag, error) {
	d := &decoder{buf: data}
	entries, err := decodeCompoundBody(d)
	if err != nil {
		return Tag{}, err
	}
	return Tag{Type: TagCompound, Compound: entries}, nil
}

func decodeCompoundBody(d *decoder) ([]NamedTag, error) {
	var entries []NamedTag
	for {
		tagType, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if TagType(tagType) == TagEnd {
			return entries, nil
		}
		name, err := d.readModifiedUTF8()
		if err != nil {
			return nil, err
		}
		tag, err := decodePayload(d, TagType(tagType))
		if err != nil {
			return nil, err
		}
		entries = append(entries, NamedTag{Name: name, Tag: tag})
	}
}

func decodePayload(d *decoder, t TagType) (Tag, error) {
	switch t {
	case TagByte:
		b, err := d.readByte()
		return Tag{Type: TagByte, Byte: int8(b)}, err
	case TagShort:
		v, err := d.readUint16()
		return Tag{Type: TagShort, Short: int16(v)}, err
	case TagInt:
		v, err := d.readUint32()
		return Tag{Type: TagInt, Int: int32(v)}, err
	case TagLong:
		v, err := d.readUint64()
		return Tag{Type: TagLong, Long: int64(v)}, err
	case TagFloat:
		v, err := d.readUint32()
		return Tag{Type: TagFloat, Float: float32frombits(v)}, err
	case TagDouble:
		v, err := d.readUint64()
		return Tag{Type: TagDouble, Double: float64frombits(v)}, err
	case TagByteArray:
		n, err := d.readUint32()
		if err != nil {
			return Tag{}, err
		}
		arr := make([]int8, n)
		for i := range arr {
			b, err := d.readByte()
			if err != nil {
				return Tag{}, err
			}
			arr[i] = int8(b)
		}
		return Tag{Type: TagByteArray, ByteArray: arr}, nil
	case TagString:
		s, err := d.readModifiedUTF8()
		return Tag{Type: TagString, String: s}, err
	case TagList:
		elemType, err := d.readByte()
		if err != nil {
			return Tag{}, err
		}
		n, err := d.readUint32()
		if err != nil {
			return Tag{}, err
		}
		list := make([]Tag, n)
		for i := range list {
			entry, err := decodePayload(d, TagType(elemType))
			if err != nil {
				return Tag{}, err
			}
			list[i] = entry
		}
		return Tag{Type: TagList, List: list, ListType: TagType(elemType)}, nil
	case TagCompound:
		entries, err := decodeCompoundBody(d)
		return Tag{Type: TagCompound, Compound: entries}, err
	case TagIntArray:
		n, err := d.readUint32()
		if err != nil {
			return Tag{}, err
		}
		arr := make([]int32, n)
		for i := range arr {
			v, err := d.readUint32()
			if err != nil {
				return Tag{}, err
			}
			arr[i] = int32(v)
		}
		return Tag{Type: TagIntArray, IntArray: arr}, nil
	case TagLongArray:
		n, err := d.readUint32()
		if err != nil {
			return Tag{}, err
		}
		arr := make([]int64, n)
		for i := range arr {
			v, err := d.readUint64()
			if err != nil {
				return Tag{}, err
			}
			arr[i] = int64(v)
		}
		return Tag{Type: TagLongArray, LongArray: arr}, nil
	default:
		return Tag{}, fmt.Errorf("nbt: unknown tag type 0x%02x", byte(t))
	}
}
