package value

import (
	"testing"
)

var (
	sinkString string
	sinkValue  *Value
)

func BenchmarkCreateInt64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, err := Create(ValueInt64, int64(i))
		if err != nil {
			b.Fatal(err)
		}
		sinkValue = v
	}
}

func BenchmarkCreateString(b *testing.B) {
	src := []byte("the quick brown fox jumps over the lazy dog")
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		v, err := Create(ValueString, src)
		if err != nil {
			b.Fatal(err)
		}
		if err := v.Destroy(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToStringInt64(b *testing.B) {
	v := NewInt64(-1234567890123)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkString = v.ToString("key: ", 4)
	}
}

func BenchmarkToStringDouble(b *testing.B) {
	v := NewDouble(3.14159265358979)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkString = v.ToString("key: ", 4)
	}
}

func BenchmarkToStringString(b *testing.B) {
	v := NewString("the quick brown fox jumps over the lazy dog")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkString = v.ToString("key: ", 4)
	}
}
