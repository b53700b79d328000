package codon

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"bitbucket.org/Davydov/seqcode/bio"
)

// Composition stores symbol counts of sequences.
type Composition[S bio.Symbol[S]] struct {
	Counts map[S]int
	Total  int
}

// NewComposition counts symbols in sequences.
func NewComposition[S bio.Symbol[S]](seqs ...bio.Sequence[S]) *Composition[S] {
	c := &Composition[S]{Counts: make(map[S]int)}
	for _, seq := range seqs {
		c.Add(seq)
	}
	return c
}

// Add counts symbols of a sequence.
func (c *Composition[S]) Add(seq bio.Sequence[S]) {
	for i := 0; i < seq.Len(); i++ {
		c.Counts[seq.At(i)]++
	}
	c.Total += seq.Len()
}

// Fraction returns the fraction of symbol s.
func (c *Composition[S]) Fraction(s S) float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Counts[s]) / float64(c.Total)
}

// Entropy returns the Shannon entropy (in nats) of symbol frequencies.
func (c *Composition[S]) Entropy() float64 {
	if c.Total == 0 {
		return 0
	}
	p := make([]float64, 0, len(c.Counts))
	for s := range c.Counts {
		p = append(p, c.Fraction(s))
	}
	return stat.Entropy(p)
}

func (c *Composition[S]) String() string {
	symbols := make([]S, 0, len(c.Counts))
	for s := range c.Counts {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return symbols[i].Encode() < symbols[j].Encode()
	})
	var b strings.Builder
	for _, s := range symbols {
		fmt.Fprintf(&b, "%c %d\n", s.Encode(), c.Counts[s])
	}
	return b.String()
}

// GC returns G+C fraction of exact nucleotide composition.
func GC(c *Composition[bio.Nucleotide]) float64 {
	return c.Fraction(bio.NtG) + c.Fraction(bio.NtC)
}

// GCStats returns mean and standard deviation of GC content of
// sequences. Empty sequences are skipped. Standard deviation is zero
// for less than two sequences.
func GCStats(seqs ...bio.Sequence[bio.Nucleotide]) (mean, std float64) {
	gc := make([]float64, 0, len(seqs))
	for _, seq := range seqs {
		if seq.Len() == 0 {
			continue
		}
		gc = append(gc, GC(NewComposition(seq)))
	}
	switch len(gc) {
	case 0:
		return 0, 0
	case 1:
		return gc[0], 0
	}
	return stat.MeanStdDev(gc, nil)
}
