package wire

import "errors"

// Errors surfaced by the codec. All are fatal for the connection that produced them.
var (
	ErrVarIntOverflow  = errors.New("wire: varint exceeds maximum encoded length")
	ErrVarLongOverflow = errors.New("wire: varlong exceeds maximum encoded length")
	ErrInsufficientData = errors.New("wire: insufficient data to decode value")
	ErrBadUTF8         = errors.New("wire: string is not valid utf-8")
	ErrBadIdentifier   = errors.New("wire: identifier does not match [a-z0-9._/-]+ grammar")
	ErrStringTooLong   = errors.New("wire: string exceeds maximum byte length")
)
