package wire

import "github.com/google/uuid"

// WriteUUID writes sixteen bytes, most-significant byte first, no length prefix.
func (e *Encoder) WriteUUID(id uuid.UUID) {
	e.write(id[:])
}

// ReadUUID reads sixteen raw bytes into a uuid.UUID.
func (d *Decoder) ReadUUID() (uuid.UUID, error) {
	b, err := d.read(16)
	if err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	copy(id[:], b)
	return id, nil
}
