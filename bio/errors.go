package bio

import "fmt"

// InvalidSymbolError is returned when a character doesn't belong to
// an alphabet.
type InvalidSymbolError struct {
	Char     rune
	Alphabet string
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("bad %s specifier: %q", e.Alphabet, e.Char)
}

// CodonOutOfBoundsError is returned when a codon window doesn't fit
// into a sequence.
type CodonOutOfBoundsError struct {
	Index  int
	Length int
}

func (e *CodonOutOfBoundsError) Error() string {
	return fmt.Sprintf("codon index %d out of bounds (sequence length %d)", e.Index, e.Length)
}

// UntranslatableCodonError is returned for a codon which is not in
// the genetic code table.
type UntranslatableCodonError struct {
	Codon string
}

func (e *UntranslatableCodonError) Error() string {
	return fmt.Sprintf("bad codon %s", e.Codon)
}

// CodonLengthError is returned when a codon is constructed from
// anything but exactly three symbols.
type CodonLengthError struct {
	Text string
}

func (e *CodonLengthError) Error() string {
	return fmt.Sprintf("codon %q must have exactly 3 symbols", e.Text)
}

// InvalidThreeLetterError is returned for an unknown three-letter
// amino acid code.
type InvalidThreeLetterError struct {
	Code string
}

func (e *InvalidThreeLetterError) Error() string {
	return fmt.Sprintf("bad amino-acid specifier %q", e.Code)
}
