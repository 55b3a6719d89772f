package huffman

// Symbol is one unit of the input alphabet. hufblob codes raw bytes.
type Symbol = byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxCodeSize is the longest code a Code can hold.
const MaxCodeSize = 64
