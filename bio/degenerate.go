package bio

import "strings"

// DegenerateNucleotide is an IUPAC nucleotide code. The first four
// values coincide with the exact nucleotides.
type DegenerateNucleotide byte

// IUPAC codes.
const (
	DegA DegenerateNucleotide = iota
	DegC
	DegG
	DegT
	DegR // A/G
	DegY // C/T
	DegS // C/G
	DegW // A/T
	DegK // G/T
	DegM // A/C
	DegB // C/G/T
	DegD // A/G/T
	DegH // A/C/T
	DegV // A/C/G
	DegN // any
)

// DegenerateLetters lists IUPAC codes in their order.
const DegenerateLetters = "ACGTRYSWKMBDHVN"

// NucleotideSet is a set of exact nucleotides, bit i is set if
// Nucleotide(i) is a member.
type NucleotideSet uint8

var (
	degComplement = [...]DegenerateNucleotide{
		DegA: DegT, DegC: DegG, DegG: DegC, DegT: DegA,
		DegR: DegY, DegY: DegR,
		DegS: DegS, DegW: DegW,
		DegK: DegM, DegM: DegK,
		DegB: DegV, DegV: DegB,
		DegD: DegH, DegH: DegD,
		DegN: DegN,
	}
	degExpand = [...]NucleotideSet{
		DegA: 1 << NtA,
		DegC: 1 << NtC,
		DegG: 1 << NtG,
		DegT: 1 << NtT,
		DegR: 1<<NtA | 1<<NtG,
		DegY: 1<<NtC | 1<<NtT,
		DegS: 1<<NtC | 1<<NtG,
		DegW: 1<<NtA | 1<<NtT,
		DegK: 1<<NtG | 1<<NtT,
		DegM: 1<<NtA | 1<<NtC,
		DegB: 1<<NtC | 1<<NtG | 1<<NtT,
		DegD: 1<<NtA | 1<<NtG | 1<<NtT,
		DegH: 1<<NtA | 1<<NtC | 1<<NtT,
		DegV: 1<<NtA | 1<<NtC | 1<<NtG,
		DegN: 1<<NtA | 1<<NtC | 1<<NtG | 1<<NtT,
	}
	rDegenerate = letterTable(DegenerateLetters)
)

var _ Expander = DegN

// Encode returns an upper-case IUPAC letter.
func (d DegenerateNucleotide) Encode() byte {
	return DegenerateLetters[d]
}

// Decode returns a degenerate nucleotide for an IUPAC letter.
func (DegenerateNucleotide) Decode(r rune) (DegenerateNucleotide, error) {
	u := upper(r)
	if u < 0 || int(u) >= len(rDegenerate) || rDegenerate[u] == 0 {
		return 0, &InvalidSymbolError{Char: r, Alphabet: "degenerate nucleotide"}
	}
	return DegenerateNucleotide(rDegenerate[u] - 1), nil
}

// Alphabet returns "degenerate nucleotide".
func (DegenerateNucleotide) Alphabet() string {
	return "degenerate nucleotide"
}

// Complement returns the IUPAC complement, e.g. R-Y, K-M. S, W and N
// are self-complementary.
func (d DegenerateNucleotide) Complement() DegenerateNucleotide {
	return degComplement[d]
}

// Expand returns the exact nucleotides the code stands for.
func (d DegenerateNucleotide) Expand() NucleotideSet {
	return degExpand[d]
}

// Matches tests if an exact nucleotide is one of the code's bases.
func (d DegenerateNucleotide) Matches(n Nucleotide) bool {
	return d.Expand().Contains(n)
}

// IsExact tests if the code stands for exactly one nucleotide.
func (d DegenerateNucleotide) IsExact() bool {
	return d.Expand().Len() == 1
}

func (d DegenerateNucleotide) String() string {
	return string(d.Encode())
}

// Contains tests if n is in the set.
func (s NucleotideSet) Contains(n Nucleotide) bool {
	return s&(1<<n) != 0
}

// Len returns the number of nucleotides in the set.
func (s NucleotideSet) Len() (l int) {
	for n := NtA; n <= NtT; n++ {
		if s.Contains(n) {
			l++
		}
	}
	return
}

// Members returns set members in ACGT order.
func (s NucleotideSet) Members() []Nucleotide {
	m := make([]Nucleotide, 0, 4)
	for n := NtA; n <= NtT; n++ {
		if s.Contains(n) {
			m = append(m, n)
		}
	}
	return m
}

// Complement returns the set of complements of all the members.
func (s NucleotideSet) Complement() (c NucleotideSet) {
	for n := NtA; n <= NtT; n++ {
		if s.Contains(n) {
			c |= 1 << n.Complement()
		}
	}
	return
}

func (s NucleotideSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, n := range s.Members() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte(n.Encode())
	}
	b.WriteByte('}')
	return b.String()
}
