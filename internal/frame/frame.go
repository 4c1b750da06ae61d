// Package frame implements the length-prefixed packet envelope, with an optional
// two-length compressed form, described in spec.md §4.2. It also owns closing the
// gap spec.md §3/§9 flags: inbound Zlib decompression is implemented here, not left
// as a TODO, using github.com/klauspost/compress/zlib as the inflate/deflate engine.
package frame

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"mc-protocol-server/internal/wire"
)

// CompressionAlgorithm selects how the frame's compressed region, if any, is encoded.
type CompressionAlgorithm int

const (
	AlgorithmNone CompressionAlgorithm = iota
	AlgorithmZlib
)

// DefaultThreshold is the compression threshold applied when a connection doesn't
// override it (spec.md §4.2).
const DefaultThreshold = 256

// Config is the per-connection, immutable-for-the-connection's-lifetime compression
// setting (spec.md §3 "per-connection record", §5 "shared resources").
type Config struct {
	Threshold int32
	Algorithm CompressionAlgorithm
}

// NewConfig derives a Config from a threshold: negative disables compression
// entirely, any other value (including 0) enables Zlib (spec.md §4.2).
func NewConfig(threshold int32) Config {
	if threshold < 0 {
		return Config{Threshold: threshold, Algorithm: AlgorithmNone}
	}
	return Config{Threshold: threshold, Algorithm: AlgorithmZlib}
}

// Frame is a logical packet in memory: an id and its field-encoded payload. The
// outer/inner lengths and compression header are wire-only concerns, recomputed on
// every Encode rather than stored (spec.md §9: never back-fill a placeholder length).
type Frame struct {
	PacketID int32
	Payload  []byte
}

// ErrIncomplete indicates the buffer doesn't yet contain a full frame; the caller
// should retain the bytes and try again once more data has arrived (spec.md §5
// read-fragmentation requirement).
var ErrIncomplete = errors.New("frame: incomplete frame, need more bytes")

// ErrCompressionMismatch is a fatal compression error: the inflated region's length
// didn't match the declared uncompressed data length (spec.md §7).
var ErrCompressionMismatch = errors.New("frame: decompressed size does not match declared data length")

// Encode serializes a Frame into its wire bytes under cfg, computing the correctly
// sized outer length up front (spec.md §9 fixes the source's back-fill bug).
func Encode(f Frame, cfg Config) []byte {
	inner := encodeIDAndPayload(f)

	var body []byte
	switch cfg.Algorithm {
	case AlgorithmZlib:
		body = encodeCompressedBody(inner, cfg.Threshold)
	default:
		body = inner
	}

	outer := wire.NewEncoder()
	outer.WriteVarInt(int32(len(body)))
	outer.WriteBytes(body)
	return outer.Bytes()
}

func encodeIDAndPayload(f Frame) []byte {
	e := wire.NewEncoder()
	e.WriteVarInt(f.PacketID)
	e.WriteBytes(f.Payload)
	return e.Bytes()
}

// encodeCompressedBody implements spec.md §4.2's compressed-write rule: compress
// only when the id+payload region is at or above threshold, otherwise send a
// dataLength=0 header followed by the plain bytes.
func encodeCompressedBody(inner []byte, threshold int32) []byte {
	if int32(len(inner)) >= threshold {
		compressed := deflate(inner)
		e := wire.NewEncoder()
		e.WriteVarInt(int32(len(inner)))
		e.WriteBytes(compressed)
		return e.Bytes()
	}
	e := wire.NewEncoder()
	e.WriteVarInt(0)
	e.WriteBytes(inner)
	return e.Bytes()
}

func deflate(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, _ = w.Write(data)
	_ = w.Close()
	return buf.Bytes()
}

func inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("frame: zlib reader: %w", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("frame: zlib inflate: %w", err)
	}
	return out, nil
}

// Decode attempts to peel one complete frame from the head of buf. On success it
// returns the frame and how many bytes were consumed. If buf doesn't yet contain a
// full frame it returns ErrIncomplete and the caller should wait for more bytes
// (spec.md §5); any other error is fatal for the connection (spec.md §7).
func Decode(buf []byte, cfg Config) (Frame, int, error) {
	outerLen, headerLen, err := peekVarInt(buf)
	if err != nil {
		return Frame{}, 0, err
	}
	if outerLen < 0 {
		return Frame{}, 0, fmt.Errorf("frame: negative length %d", outerLen)
	}
	total := headerLen + int(outerLen)
	if len(buf) < total {
		return Frame{}, 0, ErrIncomplete
	}

	body := buf[headerLen:total]
	f, err := decodeBody(body, cfg)
	if err != nil {
		return Frame{}, 0, err
	}
	return f, total, nil
}

// peekVarInt reads a VarInt from the head of buf without requiring the rest of the
// declared payload to be present yet, distinguishing "not enough bytes for the
// length prefix itself" (ErrIncomplete) from a genuine overflow (fatal).
func peekVarInt(buf []byte) (int32, int, error) {
	d := wire.NewDecoder(buf)
	if d.Remaining() == 0 {
		return 0, 0, ErrIncomplete
	}
	v, err := d.ReadVarInt()
	if err == nil {
		return v, len(buf) - d.Remaining(), nil
	}
	if errors.Is(err, wire.ErrInsufficientData) {
		return 0, 0, ErrIncomplete
	}
	return 0, 0, err
}

func decodeBody(body []byte, cfg Config) (Frame, error) {
	switch cfg.Algorithm {
	case AlgorithmZlib:
		return decodeCompressedBody(body)
	default:
		return decodeIDAndPayload(body)
	}
}

func decodeIDAndPayload(body []byte) (Frame, error) {
	d := wire.NewDecoder(body)
	id, err := d.ReadVarInt()
	if err != nil {
		return Frame{}, err
	}
	payload, err := d.ReadBytes(d.Remaining())
	if err != nil {
		return Frame{}, err
	}
	return Frame{PacketID: id, Payload: payload}, nil
}

func decodeCompressedBody(body []byte) (Frame, error) {
	d := wire.NewDecoder(body)
	dataLength, err := d.ReadVarInt()
	if err != nil {
		return Frame{}, err
	}
	rest, err := d.ReadBytes(d.Remaining())
	if err != nil {
		return Frame{}, err
	}
	if dataLength == 0 {
		return decodeIDAndPayload(rest)
	}
	uncompressed, err := inflate(rest)
	if err != nil {
		return Frame{}, err
	}
	if int32(len(uncompressed)) != dataLength {
		return Frame{}, ErrCompressionMismatch
	}
	return decodeIDAndPayload(uncompressed)
}
