package codon

import (
	"fmt"
	"sort"
	"strings"

	"bitbucket.org/Davydov/seqcode/bio"
)

// Usage counts codons.
type Usage map[bio.Codon[bio.Nucleotide]]int

// Count counts codons of a sequence in the first reading frame.
func Count(seq bio.Sequence[bio.Nucleotide]) Usage {
	u := make(Usage, 64)
	u.Add(seq)
	return u
}

// Add adds codons of a sequence to the usage.
func (u Usage) Add(seq bio.Sequence[bio.Nucleotide]) {
	it := seq.Codons()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		u[c]++
	}
	if rest := seq.Len() % 3; rest != 0 {
		log.Debugf("Ignoring %d trailing nucleotide(s)", rest)
	}
}

// Merge adds counts from other usage.
func (u Usage) Merge(other Usage) {
	for c, n := range other {
		u[c] += n
	}
}

// Total returns the total number of codons.
func (u Usage) Total() (t int) {
	for _, n := range u {
		t += n
	}
	return
}

// Stops returns the number of stop codons.
func (u Usage) Stops() (t int) {
	for c, n := range u {
		if bio.IsStopCodon(c.Encode()) {
			t += n
		}
	}
	return
}

// AminoAcids returns the number of codons per amino acid.
func (u Usage) AminoAcids() map[bio.AminoAcid]int {
	aas := make(map[bio.AminoAcid]int, len(bio.AminoAcidLetters))
	for c, n := range u {
		aa, err := bio.TranslateCodon(c)
		if err != nil {
			log.Warning(err)
			continue
		}
		aas[aa] += n
	}
	return aas
}

// RSCU returns relative synonymous codon usage: codon count divided
// by the mean count of the synonymous codons. Amino acids which are
// not observed are skipped.
func (u Usage) RSCU() map[string]float64 {
	r := make(map[string]float64, 64)
	aas := u.AminoAcids()
	for aa, codons := range bio.RGeneticCode {
		if aas[aa] == 0 {
			continue
		}
		mean := float64(aas[aa]) / float64(len(codons))
		for _, c := range codons {
			r[c.Encode()] = float64(u[c]) / mean
		}
	}
	return r
}

// Frequency returns observed sense codon frequencies.
func (u Usage) Frequency() Frequency {
	cf := make(Frequency, NCodon)
	for c, n := range u {
		if i, ok := CodonNum[c.Encode()]; ok {
			cf[i] = float64(n)
		}
	}
	cf.normalize()
	return cf
}

// String returns a codon usage table sorted by codon.
func (u Usage) String() string {
	codons := make([]string, 0, len(u))
	for c := range u {
		codons = append(codons, c.Encode())
	}
	sort.Strings(codons)
	var b strings.Builder
	for _, cs := range codons {
		c, _ := bio.ParseCodon[bio.Nucleotide](cs)
		fmt.Fprintf(&b, "%s %c %d\n", cs, bio.GeneticCode[cs], u[c])
	}
	return b.String()
}
