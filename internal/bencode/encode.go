package bencode

import (
	"bytes"
	"sort"
	"strconv"
)

// Encode serializes v into canonical bencode form: dictionary entries are
// written sorted by raw key bytes regardless of their stored order, which
// makes the output reproducible and is what keeps info-hash computation
// stable across implementations. The input tree is not modified.
func Encode(v Value) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v)
	return buf.Bytes()
}

func writeValue(buf *bytes.Buffer, v Value) {
	switch v.Kind {
	case KindString:
		writeString(buf, v.Str)
	case KindList:
		buf.WriteByte('l')
		for _, item := range v.List {
			writeValue(buf, item)
		}
		buf.WriteByte('e')
	case KindDict:
		entries := make([]Entry, len(v.Dict))
		copy(entries, v.Dict)
		sort.Slice(entries, func(i, j int) bool {
			return bytes.Compare(entries[i].Key, entries[j].Key) < 0
		})
		buf.WriteByte('d')
		for _, e := range entries {
			writeString(buf, e.Key)
			writeValue(buf, e.Value)
		}
		buf.WriteByte('e')
	default:
		buf.WriteByte('i')
		buf.WriteString(strconv.FormatInt(v.Int, 10))
		buf.WriteByte('e')
	}
}

func writeString(buf *bytes.Buffer, s []byte) {
	buf.WriteString(strconv.Itoa(len(s)))
	buf.WriteByte(':')
	buf.Write(s)
}
