package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/moneta-go/value"
)

func testApp(out io.Writer) *app {
	return &app{log: newLogger("error", "text", io.Discard), out: out}
}

func TestParseLiteral(t *testing.T) {
	got, err := parseLiteral(value.ValueInt8, "-0x10")
	require.NoError(t, err)
	require.Equal(t, int64(-16), got)

	_, err = parseLiteral(value.ValueUInt8, "256")
	require.Error(t, err)

	got, err = parseLiteral(value.ValueFloat, "1.5")
	require.NoError(t, err)
	require.Equal(t, float32(1.5), got)

	got, err = parseLiteral(value.ValueString, "")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestScalarCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &scalarCmd{Type: "double", Literal: "-2.25", Tag: "x: ", Bits: true}
	require.NoError(t, cmd.Run(testApp(&out)))
	require.Equal(t, "x: -2.250000\nslot: 0xc002000000000000\n", out.String())

	out.Reset()
	cmd = &scalarCmd{Type: "string", Indent: 2}
	require.NoError(t, cmd.Run(testApp(&out)))
	require.Equal(t, "  null\n", out.String())

	require.Error(t, (&scalarCmd{Type: "json"}).Run(testApp(&out)))
}

func TestJSONCmd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"b":[1],"a":"x"}`), 0o644))

	var out bytes.Buffer
	cmd := &jsonCmd{File: src, Compact: true, CBOR: filepath.Join(dir, "doc.cbor")}
	require.NoError(t, cmd.Run(testApp(&out)))
	require.Equal(t, `{"a":"x","b":[1]}`+"\n", out.String())
	require.FileExists(t, cmd.CBOR)

	out.Reset()
	cmd = &jsonCmd{File: src}
	require.NoError(t, cmd.Run(testApp(&out)))
	require.Equal(t, "{\n  \"a\": \"x\",\n  \"b\": [\n    1\n  ]\n}\n", out.String())
}

func TestVerifyCmd(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("abc"), 0o644))

	var out bytes.Buffer
	cmd := &verifyCmd{Files: []string{file}, Expected: []string{"32d153ff"}, Algorithm: "xxh32", Workers: 1}
	require.NoError(t, cmd.Run(testApp(&out)))
	require.Equal(t, "failed: []\n", out.String())

	out.Reset()
	cmd.Expected = []string{"00000000"}
	require.NoError(t, cmd.Run(testApp(&out)))
	require.Contains(t, out.String(), `"calculated": "32d153ff"`)
	require.Contains(t, out.String(), `"hash_algorithm": "XXH32"`)
}
