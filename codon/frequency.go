package codon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"bitbucket.org/Davydov/seqcode/bio"
)

// Frequency is array (slice) of sense codon frequencies indexed by
// the codon number.
type Frequency []float64

func (cf Frequency) String() (s string) {
	s = "<Frequency: "
	for i, f := range cf {
		s += fmt.Sprintf(" %v: %v,", NumCodon[byte(i)], f)
	}
	s = s[:len(s)-1] + ">"
	return
}

// normalize scales frequencies so they sum to one. All-zero
// frequencies are left untouched.
func (cf Frequency) normalize() {
	sum := floats.Sum(cf)
	if sum == 0 {
		return
	}
	floats.Scale(1/sum, cf)
}

// ReadFrequency reads codon frequencies from a reader. It should be
// just a list of 64 numbers in a text format, all codons in TCAG
// order. Values for stop codons are ignored.
func ReadFrequency(rd io.Reader) (Frequency, error) {
	cf := make(Frequency, NCodon)

	scanner := bufio.NewScanner(rd)
	scanner.Split(bufio.ScanWords)

	i := 0
	for scanner.Scan() {
		if i >= len(allCodons) {
			return nil, errors.New("too many frequencies in file")
		}
		codon := allCodons[i]
		i++
		if bio.IsStopCodon(codon) {
			continue
		}
		f, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, err
		}
		cf[CodonNum[codon]] = f
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if i < len(allCodons) {
		return nil, errors.New("not enough frequencies in file")
	}
	cf.normalize()
	return cf, nil
}

// F0 returns array (slice) of equal codon frequencies.
func F0() Frequency {
	cf := make(Frequency, NCodon)
	for i := 0; i < NCodon; i++ {
		cf[i] = 1 / float64(NCodon)
	}
	return cf
}

// F3X4 computes F3X4-style frequencies: products of
// position-specific nucleotide frequencies, renormalized over the
// sense codons.
func F3X4(usages ...Usage) (cf Frequency) {
	poscf := make([][]float64, 3)
	for i := 0; i < 3; i++ {
		poscf[i] = make([]float64, 4)
	}

	for _, u := range usages {
		for codon, n := range u {
			cs := codon.Encode()
			if _, ok := CodonNum[cs]; !ok {
				continue
			}
			poscf[0][rAlphabet[cs[0]]] += float64(n)
			poscf[1][rAlphabet[cs[1]]] += float64(n)
			poscf[2][rAlphabet[cs[2]]] += float64(n)
		}
	}
	log.Debugf("Position nucleotide counts (TCAG): %v", poscf)

	cf = make(Frequency, NCodon)
	for ci, cs := range NumCodon {
		cf[ci] = poscf[0][rAlphabet[cs[0]]] * poscf[1][rAlphabet[cs[1]]] * poscf[2][rAlphabet[cs[2]]]
	}
	cf.normalize()

	return
}
