package bio

var (
	// GeneticCode is the standard genetic code. Codon string (capital
	// letters) is the key, one-letter amino acid codes are values,
	// '*' is a stop codon.
	GeneticCode = map[string]byte{
		"ATA": 'I', "ATC": 'I', "ATT": 'I', "ATG": 'M',
		"ACA": 'T', "ACC": 'T', "ACG": 'T', "ACT": 'T',
		"AAC": 'N', "AAT": 'N', "AAA": 'K', "AAG": 'K',
		"AGC": 'S', "AGT": 'S', "AGA": 'R', "AGG": 'R',
		"CTA": 'L', "CTC": 'L', "CTG": 'L', "CTT": 'L',
		"CCA": 'P', "CCC": 'P', "CCG": 'P', "CCT": 'P',
		"CAC": 'H', "CAT": 'H', "CAA": 'Q', "CAG": 'Q',
		"CGA": 'R', "CGC": 'R', "CGG": 'R', "CGT": 'R',
		"GTA": 'V', "GTC": 'V', "GTG": 'V', "GTT": 'V',
		"GCA": 'A', "GCC": 'A', "GCG": 'A', "GCT": 'A',
		"GAC": 'D', "GAT": 'D', "GAA": 'E', "GAG": 'E',
		"GGA": 'G', "GGC": 'G', "GGG": 'G', "GGT": 'G',
		"TCA": 'S', "TCC": 'S', "TCG": 'S', "TCT": 'S',
		"TTC": 'F', "TTT": 'F', "TTA": 'L', "TTG": 'L',
		"TAC": 'Y', "TAT": 'Y', "TAA": '*', "TAG": '*',
		"TGC": 'C', "TGT": 'C', "TGA": '*', "TGG": 'W'}
	// RGeneticCode is mapping amino acids to their codons.
	RGeneticCode map[AminoAcid][]Codon[Nucleotide]

	// translation is GeneticCode indexed by the codon number
	// (16*first + 4*second + third, ACGT order).
	translation [64]AminoAcid
)

func init() {
	RGeneticCode = make(map[AminoAcid][]Codon[Nucleotide], len(AminoAcidLetters))
	for cs, l := range GeneticCode {
		c, err := ParseCodon[Nucleotide](cs)
		if err != nil {
			panic(err)
		}
		aa, err := AminoAcid(0).Decode(rune(l))
		if err != nil {
			panic(err)
		}
		translation[codonIndex(c)] = aa
		RGeneticCode[aa] = append(RGeneticCode[aa], c)
	}
}

func codonIndex(c Codon[Nucleotide]) int {
	return int(c[0])<<4 | int(c[1])<<2 | int(c[2])
}

// IsStopCodon tests if the string is a stop-codon (DNA alphabet,
// capital letters).
func IsStopCodon(codon string) bool {
	return GeneticCode[codon] == '*'
}

// TranslateCodon returns the amino acid encoded by a codon. A codon
// which is not in the genetic code table results in
// *UntranslatableCodonError.
func TranslateCodon(c Codon[Nucleotide]) (AminoAcid, error) {
	for _, n := range c {
		if n > NtT {
			b := make([]byte, 3)
			for i, n := range c {
				b[i] = '?'
				if n <= NtT {
					b[i] = n.Encode()
				}
			}
			return 0, &UntranslatableCodonError{Codon: string(b)}
		}
	}
	return translation[codonIndex(c)], nil
}

// Translate translates a nucleotide sequence in the first reading
// frame. Trailing nucleotides not forming a full codon are ignored,
// stop codons are translated to Stop.
func Translate(seq Sequence[Nucleotide]) (Sequence[AminoAcid], error) {
	prot := Sequence[AminoAcid]{data: make([]AminoAcid, 0, seq.Len()/3)}
	it := seq.Codons()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		aa, err := TranslateCodon(c)
		if err != nil {
			return Sequence[AminoAcid]{}, err
		}
		prot.Append(aa)
	}
	return prot, nil
}

// TranslateString translates nucleotide sequence string into the
// protein string.
func TranslateString(nseq string) (string, error) {
	seq, err := DecodeSequence[Nucleotide](nseq)
	if err != nil {
		return "", err
	}
	prot, err := Translate(seq)
	if err != nil {
		return "", err
	}
	return prot.Encode(), nil
}
