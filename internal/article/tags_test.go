package article

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTags_LowercasesAndKeepsOrder(t *testing.T) {
	cases := []struct {
		name string
		in   TagsInput
		want []string
	}{
		{"raw array", RawTags("Go", "MONGO", "go"), []string{"go", "mongo", "go"}},
		{"encoded string", EncodedTags(`["X","y","Zz"]`), []string{"x", "y", "zz"}},
		{"empty raw", RawTags(), []string{}},
		{"empty encoded", EncodedTags(`[]`), []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTags(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseTags_Rejects(t *testing.T) {
	cases := map[string]TagsInput{
		"missing":             {},
		"malformed json":      EncodedTags(`["a",`),
		"encoded non-array":   EncodedTags(`"a"`),
		"encoded null":        EncodedTags(`null`),
		"encoded number elem": EncodedTags(`["a", 1]`),
		"raw non-string elem": {kind: tagsRawArray, raw: []any{"a", true}},
		"invalid":             {kind: tagsInvalid},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTags(in)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrValidation))
			require.Equal(t, MsgInvalidTags, err.Error())
		})
	}
}

func TestInput_UnmarshalTagsShapes(t *testing.T) {
	cases := []struct {
		body    string
		want    []string
		invalid bool
	}{
		{body: `{"tags":["A","b"]}`, want: []string{"a", "b"}},
		{body: `{"tags":"[\"A\",\"b\"]"}`, want: []string{"a", "b"}},
		{body: `{"tags":42}`, invalid: true},
		{body: `{"tags":{"a":1}}`, invalid: true},
		{body: `{"tags":null}`, invalid: true},
		{body: `{"tags":["a",2]}`, invalid: true},
		{body: `{"name":"n"}`, invalid: true},
	}
	for _, tc := range cases {
		var in Input
		require.NoError(t, json.Unmarshal([]byte(tc.body), &in), tc.body)
		got, err := ParseTags(in.Tags)
		if tc.invalid {
			require.Error(t, err, tc.body)
			continue
		}
		require.NoError(t, err, tc.body)
		require.Equal(t, tc.want, got)
	}
}

func TestErrorKinds(t *testing.T) {
	require.True(t, errors.Is(NotFoundError(), ErrNotFound))
	require.False(t, errors.Is(NotFoundError(), ErrValidation))
	require.Equal(t, "You can't have more than 100 articles", CapacityError(100).Error())

	cause := errors.New("E11000 duplicate key error")
	pe := PersistenceError(cause)
	require.True(t, errors.Is(pe, ErrPersistence))
	require.True(t, errors.Is(pe, cause))
	require.Equal(t, cause.Error(), pe.Error())
	require.Equal(t, KindPersistence, KindOf(pe))
	require.Equal(t, Kind(0), KindOf(cause))
}

func TestClone_DoesNotShareTags(t *testing.T) {
	a := &Article{ID: "1", Tags: []string{"a"}}
	c := a.Clone()
	c.Tags[0] = "b"
	require.Equal(t, "a", a.Tags[0])
}
