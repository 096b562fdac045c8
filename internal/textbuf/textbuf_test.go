package textbuf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndent(t *testing.T) {
	require.Equal(t, "", String(Indent(nil, "", 0)))
	require.Equal(t, "    k: ", String(Indent(nil, "k: ", 4)))
}

func TestAppendNumbers(t *testing.T) {
	buf := Append(nil, "[")
	buf = AppendInt(buf, math.MinInt64)
	buf = Append(buf, " ")
	buf = AppendUint(buf, math.MaxUint64)
	require.Equal(t, "[-9223372036854775808 18446744073709551615", String(buf))
	require.Equal(t, "", String(nil))
}
