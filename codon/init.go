// Package codon computes codon usage and codon frequencies of
// nucleotide sequences.
package codon

import (
	"github.com/op/go-logging"

	"bitbucket.org/Davydov/seqcode/bio"
)

var (
	// log is the global logging variable.
	log = logging.MustGetLogger("codon")

	alphabet  = [...]byte{'T', 'C', 'A', 'G'}
	rAlphabet = map[byte]byte{'T': 0, 'C': 1, 'A': 2, 'G': 3}
	// CodonNum maps a sense codon to its number (TCAG order, stop
	// codons skipped).
	CodonNum = map[string]byte{}
	// NumCodon maps a number to a sense codon.
	NumCodon = map[byte]string{}
	// NCodon is the number of sense codons.
	NCodon int

	// allCodons lists all the 64 codons in TCAG order.
	allCodons = make([]string, 0, 64)
)

func init() {
	i := byte(0)
	for codon := range getCodons() {
		allCodons = append(allCodons, codon)
		if bio.IsStopCodon(codon) {
			continue
		}
		CodonNum[codon] = i
		NumCodon[i] = codon
		i++
	}
	NCodon = int(i)
}

// getCodons returns a channel with every codon (64).
func getCodons() <-chan string {
	ch := make(chan string)
	var cn func(string)
	cn = func(prefix string) {
		if len(prefix) == 3 {
			ch <- prefix
		} else {
			for _, l := range alphabet {
				cn(prefix + string(l))
			}
			if len(prefix) == 0 {
				close(ch)
			}
		}
	}
	go cn("")
	return ch
}
