package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Kind
	}{
		{name: "object", input: `{"a":"b"}`, want: KindObject},
		{name: "array", input: `[1, 2]`, want: KindArray},
		{name: "string", input: `"hello"`, want: KindString},
		{name: "number", input: `42`, want: KindNumber},
		{name: "bool", input: `true`, want: KindBool},
		{name: "null", input: `null`, want: KindNull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Kind)
		})
	}
}

func TestParse_PreservesKeyOrder(t *testing.T) {
	v, err := Parse([]byte(`{"zeta": 1, "alpha": {"y": "1", "x": "2"}, "mid": [true, null]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, v.Keys())

	alpha, ok := v.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "x"}, alpha.Keys())

	mid, ok := v.Get("mid")
	require.True(t, ok)
	require.Len(t, mid.Items, 2)
	assert.Equal(t, KindBool, mid.Items[0].Kind)
	assert.Equal(t, KindNull, mid.Items[1].Kind)
}

func TestParse_DuplicateKeyKeepsFirstPositionLastValue(t *testing.T) {
	v, err := Parse([]byte(`{"a": "first", "b": "x", "a": "second"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, v.Keys())
	a, _ := v.Get("a")
	assert.Equal(t, "second", a.Str)
}

func TestParse_NumberKeepsLiteral(t *testing.T) {
	v, err := Parse([]byte(`{"n": 12345678901234567890}`))
	require.NoError(t, err)

	n, ok := v.Get("n")
	require.True(t, ok)
	assert.Equal(t, KindNumber, n.Kind)
	assert.Equal(t, "12345678901234567890", n.Num)
}

func TestParse_EmptyContainers(t *testing.T) {
	v, err := Parse([]byte(`{"o": {}, "a": []}`))
	require.NoError(t, err)

	o, _ := v.Get("o")
	assert.True(t, o.IsObject())
	assert.Empty(t, o.Members)

	a, _ := v.Get("a")
	assert.Equal(t, KindArray, a.Kind)
	assert.Empty(t, a.Items)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ``},
		{name: "whitespace only", input: "  \n\t"},
		{name: "unterminated object", input: `{"a": "b"`},
		{name: "missing value", input: `{"a":`},
		{name: "trailing document", input: `{} {}`},
		{name: "bare word", input: `hello`},
		{name: "missing colon", input: `{"a" "b"}`},
		{name: "missing comma", input: `{"a":1 "b":2}`},
		{name: "leading comma", input: `{,"a":1}`},
		{name: "doubled colon", input: `{"a"::1}`},
		{name: "doubled comma in array", input: `[1,,2]`},
		{name: "trailing comma", input: `{"a":1,}`},
		{name: "truncated literal", input: `tru`},
		{name: "misspelled literal", input: `{"a": nul}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParse_SyntaxErrorIsWrapped(t *testing.T) {
	_, err := Parse([]byte(`{"title" "Hi"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSyntax)

	_, err = Parse([]byte("   "))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "null", KindNull.String())
	assert.Equal(t, "boolean", KindBool.String())
	assert.Equal(t, "number", KindNumber.String())
	assert.Equal(t, "string", KindString.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "object", KindObject.String())
}

func TestValue_AccessorsOnNonObject(t *testing.T) {
	v := String("x")
	_, ok := v.Get("a")
	assert.False(t, ok)
	assert.False(t, v.Has("a"))
	assert.Nil(t, v.Keys())
}
