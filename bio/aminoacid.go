package bio

import "strings"

// AminoAcid is one of the 20 standard amino acids or a stop marker.
type AminoAcid byte

// Amino acids.
const (
	Ala AminoAcid = iota
	Cys
	Asp
	Glu
	Phe
	Gly
	His
	Ile
	Lys
	Leu
	Met
	Asn
	Pro
	Gln
	Arg
	Ser
	Thr
	Val
	Trp
	Tyr
	Stop
)

// AminoAcidLetters lists one-letter amino acid codes in their order,
// '*' is a stop.
const AminoAcidLetters = "ACDEFGHIKLMNPQRSTVWY*"

// threeLetter holds three-letter codes. Stop is padded with spaces to
// keep the fixed width.
var threeLetter = [...]string{
	"ALA", "CYS", "ASP", "GLU", "PHE", "GLY", "HIS", "ILE", "LYS", "LEU",
	"MET", "ASN", "PRO", "GLN", "ARG", "SER", "THR", "VAL", "TRP", "TYR",
	" * ",
}

var (
	rAminoAcid   = letterTable(AminoAcidLetters)
	rThreeLetter = threeLetterTable()
)

func threeLetterTable() map[string]AminoAcid {
	t := make(map[string]AminoAcid, len(threeLetter)+1)
	for i, code := range threeLetter {
		t[code] = AminoAcid(i)
	}
	t["*"] = Stop
	return t
}

// Encode returns the one-letter code.
func (a AminoAcid) Encode() byte {
	return AminoAcidLetters[a]
}

// Decode returns an amino acid for a one-letter code or '*'.
func (AminoAcid) Decode(r rune) (AminoAcid, error) {
	u := upper(r)
	if u < 0 || int(u) >= len(rAminoAcid) || rAminoAcid[u] == 0 {
		return 0, &InvalidSymbolError{Char: r, Alphabet: "amino acid"}
	}
	return AminoAcid(rAminoAcid[u] - 1), nil
}

// Alphabet returns "amino acid".
func (AminoAcid) Alphabet() string {
	return "amino acid"
}

// ThreeLetter returns the three-letter code, e.g. ALA. Stop is " * ".
func (a AminoAcid) ThreeLetter() string {
	return threeLetter[a]
}

// IsStop tests if a is a stop marker.
func (a AminoAcid) IsStop() bool {
	return a == Stop
}

func (a AminoAcid) String() string {
	return string(a.Encode())
}

// ParseThreeLetter returns an amino acid for a three-letter code
// (case-insensitive). Both "*" and " * " are accepted for stop.
func ParseThreeLetter(code string) (AminoAcid, error) {
	aa, ok := rThreeLetter[strings.ToUpper(code)]
	if !ok {
		return 0, &InvalidThreeLetterError{Code: code}
	}
	return aa, nil
}

// EncodeThreeLetter renders an amino acid sequence with three-letter
// codes.
func EncodeThreeLetter(seq Sequence[AminoAcid]) string {
	var b strings.Builder
	b.Grow(3 * seq.Len())
	for _, aa := range seq.data {
		b.WriteString(aa.ThreeLetter())
	}
	return b.String()
}

// DecodeThreeLetter parses concatenated three-letter codes.
func DecodeThreeLetter(text string) (seq Sequence[AminoAcid], err error) {
	if len(text)%3 != 0 {
		return seq, &InvalidThreeLetterError{Code: text}
	}
	seq.data = make([]AminoAcid, 0, len(text)/3)
	for i := 0; i < len(text); i += 3 {
		aa, err := ParseThreeLetter(text[i : i+3])
		if err != nil {
			return Sequence[AminoAcid]{}, err
		}
		seq.data = append(seq.data, aa)
	}
	return seq, nil
}
