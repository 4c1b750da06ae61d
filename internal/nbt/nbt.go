// Package nbt implements the unnamed-root variant of Named Binary Tag used on the
// wire: a tree of tagged values with no top-level name field. Values are built as a
// tagged union (spec.md §9 re-architecture guidance) with a pure, deterministic builder
// so that registry payloads serialize identically on every call (spec.md §8 idempotence).
package nbt

// TagType identifies the kind of a Tag.
type TagType byte

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// Tag is a single NBT value. Exactly one of the typed fields is meaningful,
// selected by Type.
type Tag struct {
	Type TagType

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64

	String string

	ByteArray []int8
	IntArray  []int32
	LongArray []int64

	// List holds homogeneous child tags; ListType records their common Type
	// (needed even when List is empty).
	List     []Tag
	ListType TagType

	// Compound holds named child tags in declaration order.
	Compound []NamedTag
}

// NamedTag pairs a Compound entry's name with its value.
type NamedTag struct {
	Name string
	Tag  Tag
}

// Bool serializes a boolean as an NBT Byte 0/1, matching spec.md §4.5.
func Bool(v bool) Tag {
	if v {
		return Byte(1)
	}
	return Byte(0)
}

func Byte(v int8) Tag     { return Tag{Type: TagByte, Byte: v} }
func Short(v int16) Tag    { return Tag{Type: TagShort, Short: v} }
func Int(v int32) Tag      { return Tag{Type: TagInt, Int: v} }
func Long(v int64) Tag     { return Tag{Type: TagLong, Long: v} }
func Float(v float32) Tag  { return Tag{Type: TagFloat, Float: v} }
func Double(v float64) Tag { return Tag{Type: TagDouble, Double: v} }
func String(v string) Tag  { return Tag{Type: TagString, String: v} }

func ByteArray(v []int8) Tag { return Tag{Type: TagByteArray, ByteArray: v} }
func IntArray(v []int32) Tag { return Tag{Type: TagIntArray, IntArray: v} }
func LongArray(v []int64) Tag { return Tag{Type: TagLongArray, LongArray: v} }

// List builds a TagList of the given element type. elemType must match every
// entry's Type; an empty list still needs elemType for serialization.
func List(elemType TagType, entries ...Tag) Tag {
	return Tag{Type: TagList, List: entries, ListType: elemType}
}

// StringList is a convenience builder for List(TagString, ...).
func StringList(values ...string) Tag {
	entries := make([]Tag, len(values))
	for i, v := range values {
		entries[i] = String(v)
	}
	return List(TagString, entries...)
}

// CompoundBuilder accumulates ordered name/value pairs for a TAG_Compound.
type CompoundBuilder struct {
	entries []NamedTag
}

// NewCompound starts an empty compound builder.
func NewCompound() *CompoundBuilder {
	return &CompoundBuilder{}
}

// Put appends a named entry, preserving insertion order.
func (b *CompoundBuilder) Put(name string, tag Tag) *CompoundBuilder {
	b.entries = append(b.entries, NamedTag{Name: name, Tag: tag})
	return b
}

// Build finalizes the compound into a Tag.
func (b *CompoundBuilder) Build() Tag {
	return Tag{Type: TagCompound, Compound: b.entries}
}

// Compound is a one-shot convenience equivalent to NewCompound().Put(...).Build()
// for call sites that already have pairs in hand.
func Compound(entries ...NamedTag) Tag {
	return Tag{Type: TagCompound, Compound: entries}
}

// Entry is a convenience constructor for a NamedTag, used when building a
// Compound via the variadic Compound function.
func Entry(name string, tag Tag) NamedTag {
	return NamedTag{Name: name, Tag: tag}
}
