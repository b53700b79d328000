package bio

import (
	"strings"
	"unicode/utf8"
)

// Sequence is an ordered list of symbols of one alphabet. The zero
// value is an empty sequence ready to use.
type Sequence[S Symbol[S]] struct {
	data []S
}

// NewSequence creates a sequence holding a copy of symbols.
func NewSequence[S Symbol[S]](symbols ...S) Sequence[S] {
	data := make([]S, len(symbols))
	copy(data, symbols)
	return Sequence[S]{data: data}
}

// DecodeSequence converts text into a sequence. The first character
// which is not in the alphabet is returned as *InvalidSymbolError. A
// byte which is not valid UTF-8 is reported as is.
func DecodeSequence[S Symbol[S]](text string) (Sequence[S], error) {
	seq := Sequence[S]{data: make([]S, 0, len(text))}
	for i, r := range text {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(text[i:]); size == 1 {
				r = rune(text[i])
			}
		}
		s, err := decode[S](r)
		if err != nil {
			return Sequence[S]{}, err
		}
		seq.data = append(seq.data, s)
	}
	return seq, nil
}

// Append adds symbols to the end of the sequence.
func (seq *Sequence[S]) Append(symbols ...S) {
	seq.data = append(seq.data, symbols...)
}

// Len returns the number of symbols.
func (seq Sequence[S]) Len() int {
	return len(seq.data)
}

// At returns i-th symbol.
func (seq Sequence[S]) At(i int) S {
	return seq.data[i]
}

// Symbols returns a copy of the symbols.
func (seq Sequence[S]) Symbols() []S {
	s := make([]S, len(seq.data))
	copy(s, seq.data)
	return s
}

// Equal tests if two sequences have the same symbols.
func (seq Sequence[S]) Equal(other Sequence[S]) bool {
	if len(seq.data) != len(other.data) {
		return false
	}
	for i := range seq.data {
		if seq.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Encode returns the upper-case text of the sequence.
func (seq Sequence[S]) Encode() string {
	var b strings.Builder
	b.Grow(len(seq.data))
	for _, s := range seq.data {
		b.WriteByte(s.Encode())
	}
	return b.String()
}

func (seq Sequence[S]) String() string {
	return seq.Encode()
}

// CodonAt returns a codon starting at index.
func (seq Sequence[S]) CodonAt(index int) (Codon[S], error) {
	if index < 0 || index+3 > len(seq.data) {
		return Codon[S]{}, &CodonOutOfBoundsError{Index: index, Length: len(seq.data)}
	}
	return Codon[S]{seq.data[index], seq.data[index+1], seq.data[index+2]}, nil
}

// Codons returns an iterator over non-overlapping codons starting at
// the first symbol. The trailing one or two symbols which don't make
// a full codon are skipped.
func (seq Sequence[S]) Codons() *CodonIterator[S] {
	return &CodonIterator[S]{seq: seq}
}

// ReverseComplement returns a new sequence of complements in reverse
// order.
func ReverseComplement[S Complementer[S]](seq Sequence[S]) Sequence[S] {
	n := len(seq.data)
	rc := Sequence[S]{data: make([]S, n)}
	for i, s := range seq.data {
		rc.data[n-1-i] = s.Complement()
	}
	return rc
}

// CodonIterator walks through the codons of a sequence.
type CodonIterator[S Symbol[S]] struct {
	seq    Sequence[S]
	offset int
}

// Next returns the next codon, ok is false when less than three
// symbols are left.
func (it *CodonIterator[S]) Next() (c Codon[S], ok bool) {
	c, err := it.seq.CodonAt(it.offset)
	if err != nil {
		return c, false
	}
	it.offset += 3
	return c, true
}

// Offset returns the position of the codon returned by the next call
// to Next.
func (it *CodonIterator[S]) Offset() int {
	return it.offset
}

// CodonSlice collects all the codons of the sequence.
func (seq Sequence[S]) CodonSlice() []Codon[S] {
	cs := make([]Codon[S], 0, len(seq.data)/3)
	it := seq.Codons()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		cs = append(cs, c)
	}
	return cs
}
