package jsontree

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moneta-go/value"
)

const sample = `{"b":[1,2.5,"hi",null,true],"a":{"k":-3}}`

func TestParseToString(t *testing.T) {
	j, err := Parse([]byte(sample))
	require.NoError(t, err)
	defer j.Destroy()

	require.Equal(t, KindObject, j.Kind())
	require.Equal(t, 2, j.Len())
	want := "{\n" +
		"  \"a\": {\n" +
		"    \"k\": -3\n" +
		"  },\n" +
		"  \"b\": [\n" +
		"    1,\n" +
		"    2.500000,\n" +
		"    \"hi\",\n" +
		"    null,\n" +
		"    true\n" +
		"  ]\n" +
		"}"
	require.Equal(t, want, j.ToString("", 0))
}

func TestParsersAgree(t *testing.T) {
	docs := []string{
		sample,
		`[]`,
		`{}`,
		`[[1,[2]],{"x":{"y":"z"}},-0.125,18446744073709551615]`,
		` {"dup":1,"dup":2} `,
		"[\"a\xffb\",{\"\xfe\":\"\xed\xa0\x80\"}]",
	}
	for _, doc := range docs {
		fast, err := Parse([]byte(doc))
		require.NoError(t, err, doc)
		std, err := parseStd([]byte(doc))
		require.NoError(t, err, doc)

		fastJSON, err := fast.JSON()
		require.NoError(t, err)
		stdJSON, err := std.JSON()
		require.NoError(t, err)
		require.Equal(t, stdJSON, fastJSON, doc)
		require.Equal(t, std.ToString("", 0), fast.ToString("", 0), doc)
		require.NoError(t, fast.Destroy())
		require.NoError(t, std.Destroy())
	}
}

func TestNumberTypes(t *testing.T) {
	j, err := Parse([]byte(`{"i":-5,"u":18446744073709551615,"f":1.5,"n":null}`))
	require.NoError(t, err)
	defer j.Destroy()

	_, typ, ok := j.Get("i")
	require.True(t, ok)
	require.Equal(t, value.ValueInt64, typ)
	data, typ, _ := j.Get("u")
	require.Equal(t, value.ValueUInt64, typ)
	require.Equal(t, value.Slot(^uint64(0)), data)
	_, typ, _ = j.Get("f")
	require.Equal(t, value.ValueDouble, typ)
	data, typ, _ = j.Get("n")
	require.Equal(t, value.ValueString, typ)
	require.Nil(t, data.(*string))
	require.True(t, j.Contains("n"))
	require.False(t, j.Contains("missing"))
}

func TestJSONEscaping(t *testing.T) {
	j, err := Parse([]byte(`["a\"b\\c\u0001\t",{"k\n":false}]`))
	require.NoError(t, err)
	defer j.Destroy()

	out, err := j.JSON()
	require.NoError(t, err)
	require.Equal(t, `["a\"b\\c\u0001\t",{"k\n":false}]`, out)
}

func TestJSONCompact(t *testing.T) {
	j, err := Parse([]byte(sample))
	require.NoError(t, err)
	defer j.Destroy()

	out, err := j.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"a":{"k":-3},"b":[1,2.5,"hi",null,true]}`, out)
}

func TestInvalidUTF8(t *testing.T) {
	j, err := Parse([]byte("{\"k\xff\":[\"a\xffb\"]}"))
	require.NoError(t, err)
	defer j.Destroy()

	require.True(t, j.Contains("k\uFFFD"))
	out, err := j.JSON()
	require.NoError(t, err)
	require.Equal(t, "{\"k\uFFFD\":[\"a\uFFFDb\"]}", out)

	raw, err := FromAny([]any{[]byte{'x', 0xff}})
	require.NoError(t, err)
	defer raw.Destroy()
	out, err = raw.JSON()
	require.NoError(t, err)
	require.Equal(t, `["x\ufffd"]`, out)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`42`))
	require.ErrorIs(t, err, ErrRoot)
	_, err = Parse([]byte(`"s"`))
	require.ErrorIs(t, err, ErrRoot)
	_, err = Parse([]byte("  \n"))
	require.Error(t, err)
	_, err = Parse([]byte(`{"a":}`))
	require.Error(t, err)
	_, err = parseStd([]byte(`[1] [2]`))
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	obj := NewObject()
	require.NoError(t, obj.Put("name", value.ValueString, "wal"))
	arr := NewArray()
	require.NoError(t, arr.Append(value.ValueInt8, int8(-1)))
	require.NoError(t, arr.Append(value.ValueFloat, float32(0.5)))
	av, err := arr.NewValue()
	require.NoError(t, err)
	require.NoError(t, obj.PutValue("items", av))

	require.ErrorIs(t, arr.Put("k", value.ValueBool, true), ErrNotObject)
	require.ErrorIs(t, obj.Append(value.ValueBool, true), ErrNotArray)
	_, _, ok := arr.Get("k")
	require.False(t, ok)

	var keys []string
	obj.Each(func(key string, _ *value.Value) bool {
		keys = append(keys, key)
		return true
	})
	require.Equal(t, []string{"items", "name"}, keys)

	out, err := obj.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"items":[-1,0.5],"name":"wal"}`, out)

	v, err := obj.NewValue()
	require.NoError(t, err)
	require.Equal(t, "doc: {\n  \"items\": [\n    -1,\n    0.500000\n  ],\n  \"name\": \"wal\"\n}", v.ToString("doc: ", 0))
	require.NoError(t, v.Destroy())
	require.Equal(t, 0, obj.Len())
	require.Equal(t, 0, arr.Len())
}

func TestCBORRoundTrip(t *testing.T) {
	j, err := Parse([]byte(sample))
	require.NoError(t, err)
	defer j.Destroy()

	enc, err := j.MarshalCBOR()
	require.NoError(t, err)
	back, err := FromCBOR(enc)
	require.NoError(t, err)
	defer back.Destroy()

	want, err := j.JSON()
	require.NoError(t, err)
	got, err := back.JSON()
	require.NoError(t, err)
	require.Equal(t, want, got)

	into := NewArray()
	require.NoError(t, into.Append(value.ValueBool, true))
	require.NoError(t, into.UnmarshalCBOR(enc))
	require.Equal(t, KindObject, into.Kind())
	got, err = into.JSON()
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.NoError(t, into.Destroy())

	_, err = FromCBOR([]byte{0x18, 0x2a})
	require.ErrorIs(t, err, ErrRoot)
}

func TestFromAny(t *testing.T) {
	j, err := FromAny(map[any]any{"x": []any{uint8(1), float32(0.25), []byte("b")}})
	require.NoError(t, err)
	defer j.Destroy()
	out, err := j.JSON()
	require.NoError(t, err)
	require.Equal(t, `{"x":[1,0.25,"b"]}`, out)

	_, err = FromAny(map[any]any{1: "x"})
	require.Error(t, err)
	_, err = FromAny(struct{}{})
	require.Error(t, err)
}

func FuzzParseRoundTrip(f *testing.F) {
	f.Add([]byte(sample))
	f.Add([]byte(`[1e2,-0,"é",{"":[]}]`))
	f.Add([]byte(`{"a":{"b":{"c":[true,false,null]}}}`))
	f.Fuzz(func(t *testing.T, data []byte) {
		j, err := Parse(data)
		if err != nil {
			return
		}
		defer j.Destroy()
		first, err := j.JSON()
		require.NoError(t, err)

		again, err := Parse([]byte(first))
		require.NoError(t, err, first)
		defer again.Destroy()
		second, err := again.JSON()
		require.NoError(t, err)

		third, err := Parse([]byte(second))
		require.NoError(t, err)
		defer third.Destroy()
		out, err := third.JSON()
		require.NoError(t, err)
		require.Equal(t, second, out)
	})
}
