// Package bio provides typed biological alphabets (nucleotides,
// IUPAC degenerate nucleotides and amino acids), a generic sequence
// container with codon segmentation and the standard genetic code.
package bio

// Symbol is a single letter of an alphabet. Decode is called on the
// zero value and returns the symbol for a character (case-insensitive),
// Encode returns the canonical upper-case character.
type Symbol[S any] interface {
	comparable
	Encode() byte
	Decode(r rune) (S, error)
	// Alphabet returns the alphabet name used in error messages.
	Alphabet() string
}

// Complementer is a symbol which has a base-pairing partner.
type Complementer[S any] interface {
	Symbol[S]
	Complement() S
}

// Expander is a symbol standing for a set of exact nucleotides.
type Expander interface {
	Expand() NucleotideSet
}

// letterTable maps an upper-case letter to its position in letters
// plus one, zero marks letters outside of the alphabet.
func letterTable(letters string) (t [128]byte) {
	for i := 0; i < len(letters); i++ {
		t[letters[i]] = byte(i) + 1
	}
	return
}

// decode decodes one character using the zero value of S.
func decode[S Symbol[S]](r rune) (S, error) {
	var zero S
	return zero.Decode(r)
}
