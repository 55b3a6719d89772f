// Package huffman implements the Huffman prefix code used by hufblob.
//
// The pipeline is frequency analysis, tree construction by repeated
// minimum-merge, and code table derivation by walking the tree:
//
//	freqs := huffman.Analyze(data)
//	tree, err := huffman.BuildTree(freqs)
//	if err != nil {
//	    return err // errs.ErrEmptyInput
//	}
//	table := huffman.GenerateCodeTable(tree)
//
// Tree construction is deterministic. Nodes are ordered by weight and then by
// a sequence number: leaves are numbered in ascending symbol order, and each
// merged node takes the next number. The first node removed from the heap
// becomes the left (0) child and the second becomes the right (1) child, so
// the same input always produces the same tree and code table.
//
// A tree can be persisted with WriteTree and restored with ReadTree, which
// lets a decoder rebuild the code table without the original frequencies.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
