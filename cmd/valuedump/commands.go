package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/moneta-go/value"
	"github.com/moneta-go/value/jsontree"
	"github.com/moneta-go/value/verify"
)

type jsonCmd struct {
	File    string `arg:"" type:"existingfile" help:"JSON document to read."`
	Tag     string `help:"Label printed before the tree."`
	Indent  int    `help:"Leading indentation of the tree." default:"0"`
	Compact bool   `help:"Print compact, escaped JSON instead of the value tree."`
	CBOR    string `name:"cbor" type:"path" help:"Also write the tree as CBOR to this file."`
}

func (c *jsonCmd) Run(a *app) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	tree, err := jsontree.Parse(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.File, err)
	}
	v, err := tree.NewValue()
	if err != nil {
		tree.Destroy()
		return err
	}
	defer v.Destroy()
	a.log.WithField("file", c.File).
		WithField("kind", tree.Kind()).
		WithField("len", tree.Len()).
		Debug("parsed document")

	if c.CBOR != "" {
		enc, err := tree.MarshalCBOR()
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.CBOR, enc, 0o644); err != nil {
			return err
		}
		a.log.WithField("path", c.CBOR).WithField("bytes", len(enc)).Info("wrote cbor")
	}

	if c.Compact {
		out, err := tree.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, out)
		return err
	}
	_, err = fmt.Fprintln(a.out, v.ToString(c.Tag, c.Indent))
	return err
}

type scalarCmd struct {
	Type    string `arg:"" help:"Value type: int8, uint8, int16, uint16, int32, uint32, int64, uint64, float, double, bool or string."`
	Literal string `arg:"" optional:"" help:"Literal to store; omit for an absent string."`
	Tag     string `help:"Label printed before the value."`
	Indent  int    `help:"Leading indentation." default:"0"`
	Bits    bool   `help:"Also print the raw slot in hex."`
}

func (c *scalarCmd) Run(a *app) error {
	t, ok := value.ParseType(c.Type)
	if !ok || !(t.IsScalar() || t == value.ValueString) {
		return fmt.Errorf("unsupported scalar type %q", c.Type)
	}
	data, err := parseLiteral(t, c.Literal)
	if err != nil {
		return err
	}
	v, err := value.Create(t, data)
	if err != nil {
		return err
	}
	defer v.Destroy()
	if _, err := fmt.Fprintln(a.out, v.ToString(c.Tag, c.Indent)); err != nil {
		return err
	}
	if c.Bits {
		if slot, ok := v.Data().(value.Slot); ok {
			_, err = fmt.Fprintf(a.out, "slot: %#016x\n", uint64(slot))
		}
	}
	return err
}

// parseLiteral converts text into the Go value Create expects for t.
func parseLiteral(t value.Type, s string) (any, error) {
	switch t {
	case value.ValueString:
		if s == "" {
			return nil, nil
		}
		return s, nil
	case value.ValueBool:
		return strconv.ParseBool(s)
	case value.ValueFloat:
		f, err := strconv.ParseFloat(s, 32)
		return float32(f), err
	case value.ValueDouble:
		return strconv.ParseFloat(s, 64)
	case value.ValueInt8, value.ValueInt16, value.ValueInt32, value.ValueInt64:
		return strconv.ParseInt(s, 0, bitSize(t))
	default:
		return strconv.ParseUint(s, 0, bitSize(t))
	}
}

func bitSize(t value.Type) int {
	switch t {
	case value.ValueInt8, value.ValueUInt8:
		return 8
	case value.ValueInt16, value.ValueUInt16:
		return 16
	case value.ValueInt32, value.ValueUInt32:
		return 32
	default:
		return 64
	}
}

type verifyCmd struct {
	Files     []string `arg:"" type:"existingfile" help:"Files to check."`
	Expected  []string `short:"e" help:"Expected digest per file, in the same order."`
	Algorithm string   `short:"a" default:"sha256" help:"Hash algorithm: sha224, sha256, sha384, sha512, crc32c, xxh32 or xxh3."`
	Workers   int      `short:"w" default:"4" help:"Concurrent hashes."`
}

func (c *verifyCmd) Run(a *app) error {
	alg, err := verify.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return err
	}
	entries := make([]*verify.Entry, len(c.Files))
	for i, file := range c.Files {
		e := &verify.Entry{Filename: file, Algorithm: alg}
		if i < len(c.Expected) {
			e.Original = c.Expected[i]
		}
		entries[i] = e
	}
	failed, err := verify.Run(context.Background(), entries, c.Workers)
	if err != nil {
		return err
	}
	v, err := value.Create(value.ValueDeque, failed)
	if err != nil {
		failed.Destroy()
		return err
	}
	defer v.Destroy()
	a.log.WithField("checked", len(entries)).
		WithField("failed", failed.Size()).
		Info("verification done")
	_, err = fmt.Fprintln(a.out, v.ToString("failed: ", 0))
	return err
}
