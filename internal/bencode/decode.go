package bencode

import (
	"fmt"
	"strconv"
)

// Decode parses data as exactly one bencoded value. Anything left over after
// the value is ErrTrailingData.
func Decode(data []byte) (Value, error) {
	v, next, err := DecodeAt(data, 0)
	if err != nil {
		return Value{}, err
	}
	if next != len(data) {
		return Value{}, fmt.Errorf("%w: %d bytes remain", ErrTrailingData, len(data)-next)
	}
	return v, nil
}

// DecodeAt parses one bencoded value starting at offset and returns the
// offset immediately past it, which lets callers decode a sub-value out of a
// larger buffer without separate length bookkeeping.
func DecodeAt(data []byte, offset int) (Value, int, error) {
	d := &decoder{data: data, pos: offset}
	v, err := d.decodeValue()
	if err != nil {
		return Value{}, offset, err
	}
	return v, d.pos, nil
}

type decoder struct {
	data []byte
	pos  int
}

func (d *decoder) decodeValue() (Value, error) {
	if d.pos >= len(d.data) {
		return Value{}, fmt.Errorf("%w: no value at offset %d", ErrUnexpectedToken, d.pos)
	}

	switch b := d.data[d.pos]; {
	case b == 'i':
		return d.readInteger()
	case b >= '0' && b <= '9':
		return d.readString()
	case b == 'l':
		return d.readList()
	case b == 'd':
		return d.readDict()
	default:
		return Value{}, fmt.Errorf("%w: %q at offset %d", ErrUnexpectedToken, b, d.pos)
	}
}

func (d *decoder) readInteger() (Value, error) {
	d.pos++ // 'i'
	start := d.pos
	for d.pos < len(d.data) && d.data[d.pos] != 'e' {
		d.pos++
	}
	if d.pos >= len(d.data) {
		return Value{}, fmt.Errorf("%w: unterminated integer", ErrTruncatedInput)
	}
	lit := string(d.data[start:d.pos])
	d.pos++ // 'e'

	digits := lit
	if len(lit) > 0 && lit[0] == '-' {
		digits = lit[1:]
	}
	if len(digits) == 0 {
		return Value{}, fmt.Errorf("%w: no digits in %q", ErrMalformedInteger, lit)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Value{}, fmt.Errorf("%w: %q", ErrMalformedInteger, lit)
		}
	}
	if lit == "-0" {
		return Value{}, fmt.Errorf("%w: negative zero", ErrMalformedInteger)
	}
	if len(digits) > 1 && digits[0] == '0' {
		return Value{}, fmt.Errorf("%w: leading zero in %q", ErrMalformedInteger, lit)
	}

	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q overflows int64", ErrMalformedInteger, lit)
	}
	return Integer(n), nil
}

func (d *decoder) readString() (Value, error) {
	start := d.pos
	for d.pos < len(d.data) && d.data[d.pos] != ':' {
		if b := d.data[d.pos]; b < '0' || b > '9' {
			return Value{}, fmt.Errorf("%w: %q", ErrMalformedLength, b)
		}
		d.pos++
	}
	if d.pos >= len(d.data) {
		return Value{}, fmt.Errorf("%w: length prefix without colon", ErrTruncatedInput)
	}
	lit := string(d.data[start:d.pos])
	length, err := strconv.Atoi(lit)
	if err != nil {
		// all-digit prefix, so the only Atoi failure is a length no input
		// of ours could ever satisfy
		return Value{}, fmt.Errorf("%w: declared %s bytes, %d remain", ErrTruncatedInput, lit, len(d.data)-d.pos-1)
	}
	d.pos++ // ':'

	// length > len-pos rather than pos+length > len: the sum can wrap
	// negative for hostile length prefixes near MaxInt64
	if length > len(d.data)-d.pos {
		return Value{}, fmt.Errorf("%w: declared %d bytes, %d remain", ErrTruncatedInput, length, len(d.data)-d.pos)
	}
	str := d.data[d.pos : d.pos+length]
	d.pos += length
	return Bytes(str), nil
}

func (d *decoder) readList() (Value, error) {
	d.pos++ // 'l'
	var items []Value
	for {
		if d.pos >= len(d.data) {
			return Value{}, fmt.Errorf("%w: unterminated list", ErrTruncatedInput)
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return Value{Kind: KindList, List: items}, nil
		}
		item, err := d.decodeValue()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

func (d *decoder) readDict() (Value, error) {
	d.pos++ // 'd'
	var entries []Entry
	seen := make(map[string]struct{})
	for {
		if d.pos >= len(d.data) {
			return Value{}, fmt.Errorf("%w: unterminated dictionary", ErrTruncatedInput)
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return Value{Kind: KindDict, Dict: entries}, nil
		}

		key, err := d.decodeValue()
		if err != nil {
			return Value{}, err
		}
		if key.Kind != KindString {
			return Value{}, fmt.Errorf("%w: got %s", ErrInvalidKeyType, key.Kind)
		}
		if _, dup := seen[string(key.Str)]; dup {
			return Value{}, fmt.Errorf("%w: %q", ErrDuplicateKey, key.Str)
		}
		seen[string(key.Str)] = struct{}{}

		value, err := d.decodeValue()
		if err != nil {
			return Value{}, err
		}
		entries = append(entries, Entry{Key: key.Str, Value: value})
	}
}
