package article

import (
	"encoding/json"
	"strings"
)

type tagsKind int

const (
	tagsMissing tagsKind = iota
	tagsRawArray
	tagsEncoded
	tagsInvalid
)

// TagsInput is the tags field as received from a client: either a JSON array
// or a string holding a JSON-encoded array. Anything else decodes to an
// invalid input that ParseTags rejects.
type TagsInput struct {
	kind    tagsKind
	raw     []any
	encoded string
}

// RawTags builds an already-structured tags input.
func RawTags(tags ...string) TagsInput {
	raw := make([]any, len(tags))
	for i, t := range tags {
		raw[i] = t
	}
	return TagsInput{kind: tagsRawArray, raw: raw}
}

// EncodedTags builds a tags input from a JSON-encoded string.
func EncodedTags(s string) TagsInput {
	return TagsInput{kind: tagsEncoded, encoded: s}
}

// UnmarshalJSON never fails on a well-formed value; shape errors surface from
// ParseTags so both request paths report the same message.
func (t *TagsInput) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		*t = EncodedTags(x)
	case []any:
		*t = TagsInput{kind: tagsRawArray, raw: x}
	case nil:
		*t = TagsInput{kind: tagsMissing}
	default:
		*t = TagsInput{kind: tagsInvalid}
	}
	return nil
}

// ParseTags resolves a tags input into lowercase strings. Order and count are
// preserved; duplicates are kept.
func ParseTags(in TagsInput) ([]string, error) {
	var items []any
	switch in.kind {
	case tagsRawArray:
		items = in.raw
	case tagsEncoded:
		var v any
		if err := json.Unmarshal([]byte(in.encoded), &v); err != nil {
			return nil, ValidationError(MsgInvalidTags)
		}
		arr, ok := v.([]any)
		if !ok {
			return nil, ValidationError(MsgInvalidTags)
		}
		items = arr
	default:
		return nil, ValidationError(MsgInvalidTags)
	}

	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			return nil, ValidationError(MsgInvalidTags)
		}
		out = append(out, strings.ToLower(s))
	}
	return out, nil
}
