package bencode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	var tests = []struct {
		name   string
		input  string
		assert func(t *testing.T, actual Value, err error)
	}{
		{
			name:  "integer",
			input: "i52e",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, Integer(52), actual)
			},
		},
		{
			name:  "negative integer",
			input: "i-52e",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, Integer(-52), actual)
			},
		},
		{
			name:  "zero",
			input: "i0e",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, Integer(0), actual)
			},
		},
		{
			name:  "largest int64",
			input: "i9223372036854775807e",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, Integer(9223372036854775807), actual)
			},
		},
		{
			name:  "int64 overflow",
			input: "i9223372036854775808e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrMalformedInteger)
			},
		},
		{
			name:  "negative zero",
			input: "i-0e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrMalformedInteger)
			},
		},
		{
			name:  "leading zero",
			input: "i03e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrMalformedInteger)
			},
		},
		{
			name:  "empty integer",
			input: "ie",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrMalformedInteger)
			},
		},
		{
			name:  "sign without digits",
			input: "i-e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrMalformedInteger)
			},
		},
		{
			name:  "sign in the middle",
			input: "i1-3e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrMalformedInteger)
			},
		},
		{
			name:  "plus sign",
			input: "i+52e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrMalformedInteger)
			},
		},
		{
			name:  "non-digit characters",
			input: "i12a3e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrMalformedInteger)
			},
		},
		{
			name:  "unterminated integer",
			input: "i52",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrTruncatedInput)
			},
		},
		{
			name:  "string",
			input: "4:spam",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, String("spam"), actual)
			},
		},
		{
			name:  "empty string",
			input: "0:",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, String(""), actual)
			},
		},
		{
			name:  "string payload may contain delimiters",
			input: "12:e:e:1:2:3:4",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, String("e:e:1:2:3:4"), actual)
			},
		},
		{
			name:  "string shorter than declared",
			input: "4:sp",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrTruncatedInput)
			},
		},
		{
			name:  "declared length overflows the buffer arithmetic",
			input: "9223372036854775800:x",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrTruncatedInput)
			},
		},
		{
			name:  "declared length exceeds int range",
			input: "99999999999999999999:x",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrTruncatedInput)
			},
		},
		{
			name:  "length prefix without colon",
			input: "4",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrTruncatedInput)
			},
		},
		{
			name:  "non-digit in length prefix",
			input: "4spam",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrMalformedLength)
			},
		},
		{
			name:  "list",
			input: "l4:spam4:eggse",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, List(String("spam"), String("eggs")), actual)
			},
		},
		{
			name:  "empty list",
			input: "le",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, List(), actual)
			},
		},
		{
			name:  "nested list",
			input: "ll5:helloi52eee",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, List(List(String("hello"), Integer(52))), actual)
			},
		},
		{
			name:  "unterminated list",
			input: "l4:spam",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrTruncatedInput)
			},
		},
		{
			name:  "dictionary preserves input order",
			input: "d3:cow3:moo4:spam4:eggse",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, Dict(
					Entry{Key: []byte("cow"), Value: String("moo")},
					Entry{Key: []byte("spam"), Value: String("eggs")},
				), actual)
			},
		},
		{
			name:  "empty dictionary",
			input: "de",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, Dict(), actual)
			},
		},
		{
			name:  "nested dictionary",
			input: "d4:spaml1:a1:bee",
			assert: func(t *testing.T, actual Value, err error) {
				require.NoError(t, err)
				assert.Equal(t, Dict(
					Entry{Key: []byte("spam"), Value: List(String("a"), String("b"))},
				), actual)
			},
		},
		{
			name:  "integer dictionary key",
			input: "di1e4:spame",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrInvalidKeyType)
			},
		},
		{
			name:  "duplicate dictionary key",
			input: "d3:cow3:moo3:cowi3ee",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrDuplicateKey)
			},
		},
		{
			name:  "unterminated dictionary",
			input: "d3:cow3:moo",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrTruncatedInput)
			},
		},
		{
			name:  "trailing data after value",
			input: "i3ei4e",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrTrailingData)
			},
		},
		{
			name:  "trailing garbage after string",
			input: "4:spamXYZ",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrTrailingData)
			},
		},
		{
			name:  "empty input",
			input: "",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrUnexpectedToken)
			},
		},
		{
			name:  "unknown leading byte",
			input: "x",
			assert: func(t *testing.T, actual Value, err error) {
				assert.ErrorIs(t, err, ErrUnexpectedToken)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			actual, err := Decode([]byte(tt.input))
			tt.assert(t, actual, err)
		})
	}
}

func TestDecodeAt(t *testing.T) {
	data := []byte("XX4:spami7e")

	v, next, err := DecodeAt(data, 2)
	require.NoError(t, err)
	assert.Equal(t, String("spam"), v)
	assert.Equal(t, 8, next)

	// DecodeAt decodes one value and leaves the rest untouched
	v, next, err = DecodeAt(data, next)
	require.NoError(t, err)
	assert.Equal(t, Integer(7), v)
	assert.Equal(t, len(data), next)
}
