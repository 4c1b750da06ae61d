package wire

// WriteArray writes a VarInt element count followed by each element, encoded by
// writeElem in order.
func WriteArray[T any](e *Encoder, items []T, writeElem func(*Encoder, T)) {
	e.WriteVarInt(int32(len(items)))
	for _, item := range items {
		writeElem(e, item)
	}
}

// ReadArray reads a VarInt element count and that many elements via readElem.
func ReadArray[T any](d *Decoder, readElem func(*Decoder) (T, error)) ([]T, error) {
	n, err := d.ReadVarInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrInsufficientData
	}
	items := make([]T, 0, n)
	for i := int32(0); i < n; i++ {
		item, err := readElem(d)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// WriteOptional writes value iff present is true. Optionals have no self-describing
// discriminator on the wire — the caller supplies the guard from a companion boolean
// field defined by the surrounding packet (spec.md §4.1).
func WriteOptional[T any](e *Encoder, present bool, value T, writeValue func(*Encoder, T)) {
	if present {
		writeValue(e, value)
	}
}

// ReadOptional reads value iff present is true, returning the zero value otherwise.
// A bare optional without an externally-supplied guard is a protocol bug (spec.md §4.1);
// callers must know present from a preceding field in the same packet.
func ReadOptional[T any](d *Decoder, present bool, readValue func(*Decoder) (T, error)) (T, error) {
	var zero T
	if !present {
		return zero, nil
	}
	return readValue(d)
}
