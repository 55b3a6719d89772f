package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestTable(t *testing.T) *CodeTable {
	t.Helper()

	var freqs FrequencyTable
	for i, c := range []uint64{5, 9, 12, 13, 16, 45} {
		freqs.counts[i] = c
		freqs.distinct++
		freqs.total += c
	}

	tree, err := BuildTree(freqs)
	require.NoError(t, err)

	return GenerateCodeTable(tree)
}

func TestGenerateCodeTable(t *testing.T) {
	ct := makeTestTable(t)

	expected := map[Symbol]string{
		0: "1100",
		1: "1101",
		2: "100",
		3: "101",
		4: "111",
		5: "0",
	}
	require.Equal(t, expected, ct.Codes())
	require.Equal(t, 6, ct.Len())
	require.Equal(t, uint8(1), ct.MinSize())
	require.Equal(t, uint8(4), ct.MaxSize())
}

func TestGenerateCodeTable_Degenerate(t *testing.T) {
	tree, err := BuildTree(Analyze([]byte("aaaa")))
	require.NoError(t, err)

	ct := GenerateCodeTable(tree)

	code, ok := ct.Lookup('a')
	require.True(t, ok)
	require.Equal(t, "0", code.String())
	require.Equal(t, uint8(1), ct.MinSize())
	require.Equal(t, uint8(1), ct.MaxSize())
	require.Equal(t, uint64(4), ct.EncodedBits(Analyze([]byte("aaaa"))))
}

func TestCodeTable_Bijective(t *testing.T) {
	ct := makeTestTable(t)

	for sym := range Symbol(6) {
		code, ok := ct.Lookup(sym)
		require.True(t, ok)

		back, ok := ct.Decode(code)
		require.True(t, ok)
		require.Equal(t, sym, back)
	}

	_, ok := ct.Lookup(6)
	require.False(t, ok)

	_, ok = ct.Decode(MakeCode(2, 0b11))
	require.False(t, ok, "internal node prefix must not decode")
}

func TestCodeTable_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inputs := [][]byte{
		[]byte("abb"),
		[]byte("abracadabra"),
		[]byte("the quick brown fox jumps over the lazy dog"),
	}
	skewed := make([]byte, 0, 5000)
	for range 5000 {
		// geometric-ish distribution produces deep trees
		sym := byte(0)
		for sym < 40 && rng.Intn(2) == 0 {
			sym++
		}
		skewed = append(skewed, sym)
	}
	inputs = append(inputs, skewed)

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	inputs = append(inputs, all)

	for _, data := range inputs {
		tree, err := BuildTree(Analyze(data))
		require.NoError(t, err)
		ct := GenerateCodeTable(tree)

		var codes []Code
		for sym := range Analyze(data).All() {
			code, ok := ct.Lookup(sym)
			require.True(t, ok)
			codes = append(codes, code)
		}

		for i, a := range codes {
			for j, b := range codes {
				if i == j {
					continue
				}
				require.False(t, a.HasPrefix(b), "code %s has prefix %s", a, b)
			}
		}
	}
}

func TestCodeTable_EncodedBits(t *testing.T) {
	ct := makeTestTable(t)

	var freqs FrequencyTable
	for i, c := range []uint64{5, 9, 12, 13, 16, 45} {
		freqs.counts[i] = c
		freqs.distinct++
		freqs.total += c
	}

	// 5*4 + 9*4 + 12*3 + 13*3 + 16*3 + 45*1
	require.Equal(t, uint64(224), ct.EncodedBits(freqs))
}

func TestCodeTable_Dump(t *testing.T) {
	ct := makeTestTable(t)

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tLookup(0) = \"1100\"\n",
		"\tLookup(1) = \"1101\"\n",
		"\tLookup(2) = \"100\"\n",
		"\tLookup(3) = \"101\"\n",
		"\tLookup(4) = \"111\"\n",
		"\tLookup(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, err := ct.Dump(&buf)
	require.NoError(t, err)
	require.Equal(t, expectDump, buf.String())
}
