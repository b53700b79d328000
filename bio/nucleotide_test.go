package bio

import (
	"errors"
	"strings"
	"testing"
)

func TestNucleotideRoundTrip(t *testing.T) {
	for _, ch := range NucleotideLetters + strings.ToLower(NucleotideLetters) {
		n, err := Nucleotide(0).Decode(ch)
		if err != nil {
			t.Error("Error decoding", string(ch), err)
			continue
		}
		if string(n.Encode()) != strings.ToUpper(string(ch)) {
			t.Errorf("%c decoded and encoded as %c", ch, n.Encode())
		}
	}
}

func TestNucleotideBad(t *testing.T) {
	for _, ch := range "NRYBUXZ-*. é" {
		_, err := Nucleotide(0).Decode(ch)
		var ise *InvalidSymbolError
		if !errors.As(err, &ise) {
			t.Errorf("%q: expected InvalidSymbolError, got %v", ch, err)
			continue
		}
		if ise.Char != ch {
			t.Errorf("error holds %q instead of %q", ise.Char, ch)
		}
		if ise.Alphabet != "nucleotide" {
			t.Error("wrong alphabet in error:", ise.Alphabet)
		}
	}
}

func TestNucleotideComplement(t *testing.T) {
	pairs := map[Nucleotide]Nucleotide{NtA: NtT, NtC: NtG, NtG: NtC, NtT: NtA}
	for n, c := range pairs {
		if n.Complement() != c {
			t.Errorf("complement of %v is %v, expected %v", n, n.Complement(), c)
		}
		if n.Complement().Complement() != n {
			t.Error("complement is not involutive for", n)
		}
	}
}

func TestNucleotideDegenerate(t *testing.T) {
	for n := NtA; n <= NtT; n++ {
		d := n.Degenerate()
		if d.Encode() != n.Encode() {
			t.Errorf("%v became %v", n, d)
		}
		if !d.IsExact() || !d.Matches(n) {
			t.Error("exact degenerate nucleotide doesn't match itself:", d)
		}
		if d.Complement() != n.Complement().Degenerate() {
			t.Error("complement differs between alphabets for", n)
		}
	}
}
