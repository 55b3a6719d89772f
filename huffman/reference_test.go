package huffman

import (
	"math/rand"
	"testing"

	ref "github.com/icza/huffman"
	"github.com/stretchr/testify/require"
)

// referenceBits builds an independent Huffman tree for freqs and returns the
// number of code bits it needs for the whole input.
func referenceBits(freqs FrequencyTable) uint64 {
	leaves := make([]*ref.Node, 0, freqs.Len())
	for sym, freq := range freqs.All() {
		leaves = append(leaves, &ref.Node{Value: ref.ValueType(sym), Count: int(freq)})
	}
	codes := make([]*ref.Node, len(leaves))
	copy(codes, leaves)

	ref.Build(leaves)

	var bits uint64
	for _, leaf := range codes {
		_, size := leaf.Code()
		bits += uint64(leaf.Count) * uint64(size)
	}

	return bits
}

// Every Huffman tree has the same weighted path length, so the total code
// size must match any other correct builder regardless of tie-breaking.
func TestBuildTree_MatchesReferenceCost(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := range 100 {
		alphabet := 2 + rng.Intn(NumSymbols-1)
		data := make([]byte, 64+rng.Intn(4096))
		for i := range data {
			if trial%2 == 0 {
				data[i] = byte(rng.Intn(alphabet))
			} else {
				data[i] = byte(min(rng.ExpFloat64()*float64(alphabet)/8, float64(alphabet-1)))
			}
		}

		freqs := Analyze(data)
		if freqs.Len() < 2 {
			continue
		}

		tree, err := BuildTree(freqs)
		require.NoError(t, err)
		table := GenerateCodeTable(tree)

		require.Equal(t, referenceBits(freqs), table.EncodedBits(freqs), "trial %d", trial)
	}
}

func TestBuildTree_ReferenceTextbook(t *testing.T) {
	var data []byte
	for sym, n := range []int{5, 9, 12, 13, 16, 45} {
		for range n {
			data = append(data, byte(sym))
		}
	}
	freqs := Analyze(data)

	tree, err := BuildTree(freqs)
	require.NoError(t, err)

	require.Equal(t, uint64(224), referenceBits(freqs))
	require.Equal(t, uint64(224), GenerateCodeTable(tree).EncodedBits(freqs))
}
