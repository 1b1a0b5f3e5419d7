// core/seq/revcomp.go
package seq

// IUPAC nucleotide complements. Symbols outside the alphabet (gap and
// ambiguity markers) pass through unchanged.
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := [...][2]byte{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'K', 'M'},
		{'B', 'V'}, {'D', 'H'},
		// S, W and N are their own complements.
	}
	for _, p := range pairs {
		complement[p[0]], complement[p[1]] = p[1], p[0]
		complement[p[0]+32], complement[p[1]+32] = p[1]+32, p[0]+32
	}
}

// RevComp returns the reverse complement of seq as a new slice.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
