package huffman

import "iter"

// FrequencyTable counts the occurrences of each distinct symbol in an input.
//
// The zero value is an empty table.
type FrequencyTable struct {
	counts   [NumSymbols]uint64
	distinct int
	total    uint64
}

// Analyze counts every symbol in data.
func Analyze(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		ft.counts[b]++
	}

	for _, c := range ft.counts {
		if c != 0 {
			ft.distinct++
			ft.total += c
		}
	}

	return ft
}

// Count returns the number of occurrences of sym.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return ft.distinct
}

// Total returns the sum of all counts, which equals the input length.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Symbols returns the present symbols in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, ft.distinct)
	for sym := range ft.All() {
		out = append(out, sym)
	}

	return out
}

// All iterates over the present symbols and their counts in ascending symbol order.
func (ft FrequencyTable) All() iter.Seq2[Symbol, uint64] {
	return func(yield func(Symbol, uint64) bool) {
		for i, c := range ft.counts {
			if c == 0 {
				continue
			}
			if !yield(Symbol(i), c) {
				return
			}
		}
	}
}
