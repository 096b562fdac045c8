package verify

import (
	"encoding/binary"
	"hash"
)

const (
	xxh32Prime1 uint32 = 0x9E3779B1
	xxh32Prime2 uint32 = 0x85EBCA77
	xxh32Prime3 uint32 = 0xC2B2AE3D
	xxh32Prime4 uint32 = 0x27D4EB2F
	xxh32Prime5 uint32 = 0x165667B1
)

func rotl32(x uint32, r uint32) uint32 {
	return (x << r) | (x >> (32 - r))
}

func xxh32Round(acc, input uint32) uint32 {
	acc += input * xxh32Prime2
	acc = rotl32(acc, 13)
	acc *= xxh32Prime1
	return acc
}

// SumXXH32 returns the xxh32 checksum of data with seed.
func SumXXH32(data []byte, seed uint32) uint32 {
	d := newXXH32(seed)
	d.Write(data)
	return d.Sum32()
}

// xxh32Digest is a streaming xxh32 hash.Hash32.
type xxh32Digest struct {
	seed           uint32
	v1, v2, v3, v4 uint32
	total          uint64
	mem            [16]byte
	memLen         int
}

var _ hash.Hash32 = (*xxh32Digest)(nil)

func newXXH32(seed uint32) *xxh32Digest {
	d := &xxh32Digest{seed: seed}
	d.Reset()
	return d
}

func (d *xxh32Digest) Reset() {
	d.v1 = d.seed + xxh32Prime1 + xxh32Prime2
	d.v2 = d.seed + xxh32Prime2
	d.v3 = d.seed
	d.v4 = d.seed - xxh32Prime1
	d.total = 0
	d.memLen = 0
}

func (d *xxh32Digest) Size() int { return 4 }

func (d *xxh32Digest) BlockSize() int { return 16 }

func (d *xxh32Digest) Write(p []byte) (int, error) {
	n := len(p)
	d.total += uint64(n)

	if d.memLen+len(p) < 16 {
		d.memLen += copy(d.mem[d.memLen:], p)
		return n, nil
	}
	if d.memLen > 0 {
		c := copy(d.mem[d.memLen:], p)
		d.stripe(d.mem[:])
		p = p[c:]
		d.memLen = 0
	}
	for len(p) >= 16 {
		d.stripe(p[:16])
		p = p[16:]
	}
	d.memLen = copy(d.mem[:], p)
	return n, nil
}

func (d *xxh32Digest) stripe(b []byte) {
	d.v1 = xxh32Round(d.v1, binary.LittleEndian.Uint32(b[0:]))
	d.v2 = xxh32Round(d.v2, binary.LittleEndian.Uint32(b[4:]))
	d.v3 = xxh32Round(d.v3, binary.LittleEndian.Uint32(b[8:]))
	d.v4 = xxh32Round(d.v4, binary.LittleEndian.Uint32(b[12:]))
}

func (d *xxh32Digest) Sum32() uint32 {
	var h32 uint32
	if d.total >= 16 {
		h32 = rotl32(d.v1, 1) + rotl32(d.v2, 7) + rotl32(d.v3, 12) + rotl32(d.v4, 18)
	} else {
		h32 = d.seed + xxh32Prime5
	}
	h32 += uint32(d.total)

	p := 0
	tail := d.mem[:d.memLen]
	for p <= len(tail)-4 {
		h32 += binary.LittleEndian.Uint32(tail[p:]) * xxh32Prime3
		p += 4
		h32 = rotl32(h32, 17) * xxh32Prime4
	}
	for p < len(tail) {
		h32 += uint32(tail[p]) * xxh32Prime5
		p++
		h32 = rotl32(h32, 11) * xxh32Prime1
	}

	h32 ^= h32 >> 15
	h32 *= xxh32Prime2
	h32 ^= h32 >> 13
	h32 *= xxh32Prime3
	h32 ^= h32 >> 16
	return h32
}

func (d *xxh32Digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, d.Sum32())
}
