package bencode

// Kind discriminates the four bencode value types.
type Kind uint8

const (
	KindInteger Kind = iota
	KindString
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dictionary"
	}
	return "unknown"
}

// Value is one decoded bencode value. Exactly one of the payload fields is
// meaningful, selected by Kind; the zero Value is the integer 0.
// Dictionaries keep their entries in the order they were encountered and
// keys are raw bytes, not required to be valid text.
type Value struct {
	Kind Kind
	Int  int64
	Str  []byte
	List []Value
	Dict []Entry
}

// Entry is a single dictionary key/value pair.
type Entry struct {
	Key   []byte
	Value Value
}

func Integer(n int64) Value {
	return Value{Kind: KindInteger, Int: n}
}

func String(s string) Value {
	return Value{Kind: KindString, Str: []byte(s)}
}

func Bytes(b []byte) Value {
	return Value{Kind: KindString, Str: b}
}

func List(items ...Value) Value {
	return Value{Kind: KindList, List: items}
}

func Dict(entries ...Entry) Value {
	return Value{Kind: KindDict, Dict: entries}
}

// Lookup returns the value stored under key. It reports false when v is not
// a dictionary or the key is absent.
func (v Value) Lookup(key string) (Value, bool) {
	if v.Kind != KindDict {
		return Value{}, false
	}
	for _, e := range v.Dict {
		if string(e.Key) == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Interface converts the tree to plain Go values: int64, string, []any and
// map[string]any. Byte strings become Go strings as-is, even when they hold
// binary data; this is a presentation helper, not a round-trip format.
func (v Value) Interface() any {
	switch v.Kind {
	case KindString:
		return string(v.Str)
	case KindList:
		out := make([]any, 0, len(v.List))
		for _, item := range v.List {
			out = append(out, item.Interface())
		}
		return out
	case KindDict:
		out := make(map[string]any, len(v.Dict))
		for _, e := range v.Dict {
			out[string(e.Key)] = e.Value.Interface()
		}
		return out
	default:
		return v.Int
	}
}
