package art

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moneta-go/value"
)

func TestInsertSearch(t *testing.T) {
	a := New()
	require.NoError(t, a.Insert("b", value.ValueInt32, int32(-7)))
	require.NoError(t, a.Insert("a", value.ValueString, "alpha"))
	require.NoError(t, a.Insert("c", value.ValueBool, true))

	require.Equal(t, 3, a.Size())
	require.True(t, a.Contains("a"))
	require.False(t, a.Contains("z"))

	data, typ, ok := a.SearchTyped("b")
	require.True(t, ok)
	require.Equal(t, value.ValueInt32, typ)
	require.Equal(t, value.Slot(0xFFFFFFF9), data)

	data, ok = a.Search("a")
	require.True(t, ok)
	require.Equal(t, "alpha", *data.(*string))

	_, ok = a.Search("missing")
	require.False(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, a.Keys())
}

func TestReplaceDestroysOld(t *testing.T) {
	a := New()
	inner := New()
	require.NoError(t, inner.Insert("x", value.ValueInt8, int8(1)))
	require.NoError(t, a.Insert("k", value.ValueART, inner))
	require.NoError(t, a.Insert("k", value.ValueUInt8, uint8(2)))

	require.Equal(t, 0, inner.Size())
	require.Equal(t, 1, a.Size())
	v, ok := a.Value("k")
	require.True(t, ok)
	require.Equal(t, "2", v.String())
}

func TestReinsertSameValue(t *testing.T) {
	a := New()
	v := value.NewString("kept")
	require.NoError(t, a.InsertValue("k", v))
	require.NoError(t, a.InsertValue("k", v))

	require.Equal(t, 1, a.Size())
	require.Equal(t, "{\n  k: \"kept\"\n}", a.ToString("", 0))
	require.NoError(t, a.Destroy())
	require.ErrorIs(t, v.Destroy(), value.ErrDestroyed)
}

func TestDelete(t *testing.T) {
	a := New()
	require.NoError(t, a.Insert("k", value.ValueString, "v"))
	v, _ := a.Value("k")

	ok, err := a.Delete("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, a.Size())
	require.ErrorIs(t, v.Destroy(), value.ErrDestroyed)

	ok, err = a.Delete("k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWalkPrefix(t *testing.T) {
	a := New()
	for _, k := range []string{"pg_wal/1", "pg_wal/2", "base/1", "pg_xact/1"} {
		require.NoError(t, a.Insert(k, value.ValueString, k))
	}
	var got []string
	a.WalkPrefix("pg_wal/", func(key string, _ *value.Value) bool {
		got = append(got, key)
		return true
	})
	require.Equal(t, []string{"pg_wal/1", "pg_wal/2"}, got)

	got = got[:0]
	a.Walk(func(key string, _ *value.Value) bool {
		got = append(got, key)
		return len(got) < 2
	})
	require.Equal(t, []string{"base/1", "pg_wal/1"}, got)
}

func TestToString(t *testing.T) {
	a := New()
	require.Equal(t, "{}", a.ToString("", 0))
	require.Equal(t, "  m: {}", a.ToString("m: ", 2))

	require.NoError(t, a.Insert("name", value.ValueString, "primary"))
	require.NoError(t, a.Insert("port", value.ValueUInt16, uint16(5432)))
	inner := New()
	require.NoError(t, inner.Insert("on", value.ValueBool, true))
	require.NoError(t, a.Insert("tls", value.ValueART, inner))

	want := "{\n" +
		"  name: \"primary\",\n" +
		"  port: 5432,\n" +
		"  tls: {\n" +
		"    on: true\n" +
		"  }\n" +
		"}"
	require.Equal(t, want, a.ToString("", 0))
}

func TestDestroy(t *testing.T) {
	a := New()
	inner := New()
	require.NoError(t, inner.Insert("x", value.ValueString, "y"))
	require.NoError(t, a.Insert("inner", value.ValueART, inner))
	require.NoError(t, a.Insert("n", value.ValueInt64, int64(1)))
	v, _ := a.Value("n")

	require.NoError(t, a.Destroy())
	require.Equal(t, 0, a.Size())
	require.Equal(t, 0, inner.Size())
	require.ErrorIs(t, v.Destroy(), value.ErrDestroyed)

	var nilMap *ART
	require.NoError(t, nilMap.Destroy())
}

func TestOwnedByValue(t *testing.T) {
	a := New()
	require.NoError(t, a.Insert("k", value.ValueDouble, 2.5))
	v, err := value.Create(value.ValueART, a)
	require.NoError(t, err)
	require.Equal(t, "x: {\n  k: 2.500000\n}", v.ToString("x: ", 0))
	require.NoError(t, v.Destroy())
	require.Equal(t, 0, a.Size())
}
