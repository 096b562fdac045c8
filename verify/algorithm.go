package verify

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// Algorithm identifies the checksum used for a verification record.
type Algorithm uint8

const (
	SHA256 Algorithm = iota
	SHA224
	SHA384
	SHA512
	CRC32C
	XXH32
	XXH3
)

var algorithmNames = [...]string{
	SHA256: "SHA256",
	SHA224: "SHA224",
	SHA384: "SHA384",
	SHA512: "SHA512",
	CRC32C: "CRC32C",
	XXH32:  "XXH32",
	XXH3:   "XXH3",
}

func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "algorithm(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlgorithm accepts an algorithm name in any case, with or without a
// dash ("sha-256").
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToUpper(strings.ReplaceAll(s, "-", ""))
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hash algorithm %q", s)
}

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// New returns a fresh hash for a.
func (a Algorithm) New() (hash.Hash, error) {
	switch a {
	case SHA256:
		return sha256.New(), nil
	case SHA224:
		return sha256.New224(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	case CRC32C:
		return crc32.New(castagnoli), nil
	case XXH32:
		return newXXH32(0), nil
	case XXH3:
		return xxh3.New(), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %s", a)
	}
}

// Hash reads r to the end and returns the lowercase hex digest.
func Hash(r io.Reader, a Algorithm) (string, error) {
	h, err := a.New()
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile returns the hex digest of the file at path.
func HashFile(path string, a Algorithm) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Hash(f, a)
}
