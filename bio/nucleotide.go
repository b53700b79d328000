package bio

// Nucleotide is an exact DNA base.
type Nucleotide byte

// Nucleotides.
const (
	NtA Nucleotide = iota
	NtC
	NtG
	NtT
)

// NucleotideLetters lists the exact nucleotides in their order.
const NucleotideLetters = "ACGT"

var (
	ntComplement = [...]Nucleotide{NtA: NtT, NtC: NtG, NtG: NtC, NtT: NtA}
	rNucleotide  = letterTable(NucleotideLetters)
)

// upper converts ASCII lower-case letters to upper case, everything
// else is returned unchanged.
func upper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// Encode returns an upper-case letter for the nucleotide.
func (n Nucleotide) Encode() byte {
	return NucleotideLetters[n]
}

// Decode returns a nucleotide for a letter.
func (Nucleotide) Decode(r rune) (Nucleotide, error) {
	u := upper(r)
	if u < 0 || int(u) >= len(rNucleotide) || rNucleotide[u] == 0 {
		return 0, &InvalidSymbolError{Char: r, Alphabet: "nucleotide"}
	}
	return Nucleotide(rNucleotide[u] - 1), nil
}

// Alphabet returns "nucleotide".
func (Nucleotide) Alphabet() string {
	return "nucleotide"
}

// Complement returns the base-pairing partner (A-T, C-G).
func (n Nucleotide) Complement() Nucleotide {
	return ntComplement[n]
}

// Degenerate returns the same base in the IUPAC alphabet.
func (n Nucleotide) Degenerate() DegenerateNucleotide {
	return DegenerateNucleotide(n)
}

func (n Nucleotide) String() string {
	return string(n.Encode())
}
