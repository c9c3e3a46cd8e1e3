// Package bencode implements decoding and canonical encoding of bencoded
// data as used by .torrent metadata files. Canonical means dictionary keys
// sorted by raw byte value, no redundant leading zeros and no whitespace,
// so re-encoding a decoded tree is byte-reproducible.
package bencode

import "errors"

var (
	ErrMalformedInteger = errors.New("malformed integer")
	ErrMalformedLength  = errors.New("malformed string length prefix")
	ErrTruncatedInput   = errors.New("truncated input")
	ErrInvalidKeyType   = errors.New("dictionary key is not a byte string")
	ErrDuplicateKey     = errors.New("duplicate dictionary key")
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrTrailingData     = errors.New("trailing data after value")
)
