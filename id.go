package outbound

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

type idKind uint8

const (
	idInvalid idKind = iota
	idString
	idNumber
)

// ID identifies a user or group. The API accepts either a string or a
// number; an ID holds exactly one of the two. The zero ID is invalid and is
// rejected by every operation.
type ID struct {
	kind idKind
	str  string
	num  json.Number
}

func StringID(s string) ID {
	return ID{kind: idString, str: s}
}

func IntID(n int64) ID {
	return ID{kind: idNumber, num: json.Number(strconv.FormatInt(n, 10))}
}

func UintID(n uint64) ID {
	return ID{kind: idNumber, num: json.Number(strconv.FormatUint(n, 10))}
}

// FloatID returns an invalid ID for NaN and infinities, which have no JSON
// representation.
func FloatID(f float64) ID {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ID{}
	}

	return ID{kind: idNumber, num: json.Number(strconv.FormatFloat(f, 'f', -1, 64))}
}

// IDFrom converts a dynamically typed value into an ID. Strings and Go
// numeric types are accepted; anything else yields an invalid ID.
func IDFrom(v any) ID {
	switch v := v.(type) {
	case ID:
		return v
	case string:
		return StringID(v)
	case int:
		return IntID(int64(v))
	case int8:
		return IntID(int64(v))
	case int16:
		return IntID(int64(v))
	case int32:
		return IntID(int64(v))
	case int64:
		return IntID(v)
	case uint:
		return UintID(uint64(v))
	case uint8:
		return UintID(uint64(v))
	case uint16:
		return UintID(uint64(v))
	case uint32:
		return UintID(uint64(v))
	case uint64:
		return UintID(v)
	case float32:
		return FloatID(float64(v))
	case float64:
		return FloatID(v)
	case json.Number:
		if !isJSONNumber(string(v)) {
			return ID{}
		}
		return ID{kind: idNumber, num: v}
	default:
		return ID{}
	}
}

// isJSONNumber reports whether s is a single JSON number literal with no
// surrounding whitespace.
func isJSONNumber(s string) bool {
	if s == "" || !json.Valid([]byte(s)) {
		return false
	}

	first, last := s[0], s[len(s)-1]

	return (first == '-' || isDigit(first)) && isDigit(last)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (id ID) Valid() bool {
	return id.kind != idInvalid
}

func (id ID) IsNumeric() bool {
	return id.kind == idNumber
}

func (id ID) String() string {
	switch id.kind {
	case idString:
		return id.str
	case idNumber:
		return id.num.String()
	default:
		return "<invalid>"
	}
}

func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case idString:
		return json.Marshal(id.str)
	case idNumber:
		return []byte(id.num), nil
	default:
		return nil, errors.New("cannot encode invalid ID")
	}
}
