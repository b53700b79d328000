package codon

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/seqcode/bio"
)

const smallDiff = 1e-9

func init() {
	logging.SetLevel(logging.WARNING, "codon")
}

/*** Tests if a and b are approximately equal ***/
func appreq(a, b float64) bool {
	return math.Abs(a-b) <= smallDiff
}

func mustDecode(t *testing.T, s string) bio.Sequence[bio.Nucleotide] {
	seq, err := bio.DecodeSequence[bio.Nucleotide](s)
	if err != nil {
		t.Fatal(err)
	}
	return seq
}

func mustCodon(t *testing.T, s string) bio.Codon[bio.Nucleotide] {
	c, err := bio.ParseCodon[bio.Nucleotide](s)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNumbering(t *testing.T) {
	if NCodon != 61 {
		t.Error("expected 61 sense codons, got", NCodon)
	}
	if NumCodon[0] != "TTT" || NumCodon[byte(NCodon-1)] != "GGG" {
		t.Error("wrong codon order:", NumCodon[0], NumCodon[byte(NCodon-1)])
	}
	for cs, i := range CodonNum {
		if NumCodon[i] != cs {
			t.Error("numbering mismatch for", cs)
		}
	}
	if _, ok := CodonNum["TAA"]; ok {
		t.Error("stop codon is numbered")
	}
}

func TestCount(t *testing.T) {
	u := Count(mustDecode(t, "ATGAAAAAATAAG"))
	if u.Total() != 4 {
		t.Error("expected 4 codons, got", u.Total())
	}
	if u[mustCodon(t, "AAA")] != 2 || u[mustCodon(t, "ATG")] != 1 {
		t.Error("wrong counts:", u)
	}
	if u.Stops() != 1 {
		t.Error("expected 1 stop, got", u.Stops())
	}
	aas := u.AminoAcids()
	if aas[bio.Lys] != 2 || aas[bio.Met] != 1 || aas[bio.Stop] != 1 {
		t.Error("wrong amino acid counts:", aas)
	}
	u.Merge(Count(mustDecode(t, "AAA")))
	if u[mustCodon(t, "AAA")] != 3 {
		t.Error("merge failed")
	}
	if !strings.HasPrefix(u.String(), "AAA K 3\nATG M 1\nTAA * 1\n") {
		t.Errorf("Got %q", u.String())
	}
}

func TestRSCU(t *testing.T) {
	r := Count(mustDecode(t, "CTGCTGTTAATG")).RSCU()
	if !appreq(r["CTG"], 4) || !appreq(r["TTA"], 2) || !appreq(r["CTT"], 0) {
		t.Error("wrong leucine RSCU:", r)
	}
	if !appreq(r["ATG"], 1) {
		t.Error("methionine RSCU should be 1, got", r["ATG"])
	}
	if _, ok := r["AAA"]; ok {
		t.Error("unobserved amino acid is in RSCU")
	}
}

func TestFrequency(t *testing.T) {
	cf := Count(mustDecode(t, "ATGAAAAAATAA")).Frequency()
	if len(cf) != NCodon {
		t.Fatal("wrong length", len(cf))
	}
	if !appreq(cf[CodonNum["AAA"]], 2./3) || !appreq(cf[CodonNum["ATG"]], 1./3) {
		t.Error("wrong frequencies", cf)
	}

	for _, f := range F0() {
		if !appreq(f, 1/float64(NCodon)) {
			t.Error("F0 is not uniform")
			break
		}
	}

	if cf := Count(mustDecode(t, "AC")).Frequency(); cf[0] != 0 {
		t.Error("empty usage has non-zero frequencies")
	}
}

func TestF3X4(t *testing.T) {
	cf := F3X4(Count(mustDecode(t, "ATGATGATG")))
	for i, f := range cf {
		want := 0.0
		if NumCodon[byte(i)] == "ATG" {
			want = 1
		}
		if !appreq(f, want) {
			t.Errorf("%s: %v, expected %v", NumCodon[byte(i)], f, want)
		}
	}

	cf = F3X4(Count(mustDecode(t, "AAATTT")), Count(mustDecode(t, "CCCGGG")))
	sum := 0.0
	for _, f := range cf {
		sum += f
	}
	if !appreq(sum, 1) {
		t.Error("F3X4 doesn't sum to 1:", sum)
	}
	// all the position frequencies are equal, so are sense codons
	for _, f := range cf {
		if !appreq(f, 1/float64(NCodon)) {
			t.Error("expected uniform frequencies, got", cf)
			break
		}
	}
}

func TestReadFrequency(t *testing.T) {
	text := strings.Repeat("2 ", 64)
	cf, err := ReadFrequency(bytes.NewBufferString(text))
	if err != nil {
		t.Fatal(err)
	}
	if !appreq(cf[5], 1/float64(NCodon)) {
		t.Error("frequencies are not normalized:", cf[5])
	}
	if _, err := ReadFrequency(bytes.NewBufferString(text + "1")); err == nil {
		t.Error("too many frequencies accepted")
	}
	if _, err := ReadFrequency(bytes.NewBufferString("1 2 3")); err == nil {
		t.Error("too few frequencies accepted")
	}
	if _, err := ReadFrequency(bytes.NewBufferString("x" + text)); err == nil {
		t.Error("bad number accepted")
	}
	if _, err := ReadFrequency(bytes.NewBufferString(strings.Repeat("2 ", NCodon))); err == nil {
		t.Error("sense codon frequencies only accepted")
	}
}

func TestReadFrequencyStops(t *testing.T) {
	// stop codons (TAA, TAG, TGA) get a huge value which must be skipped
	values := make([]string, 0, 64)
	for _, cs := range allCodons {
		switch {
		case bio.IsStopCodon(cs):
			values = append(values, "1000")
		case cs == "TTT":
			values = append(values, "3")
		default:
			values = append(values, "1")
		}
	}
	cf, err := ReadFrequency(bytes.NewBufferString(strings.Join(values, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	sum := float64(NCodon + 2)
	if !appreq(cf[CodonNum["TTT"]], 3/sum) || !appreq(cf[CodonNum["GGG"]], 1/sum) {
		t.Error("wrong frequencies", cf)
	}
}

func TestComposition(t *testing.T) {
	c := NewComposition(mustDecode(t, "ACGGT"))
	if c.Total != 5 || c.Counts[bio.NtG] != 2 {
		t.Error("wrong counts", c)
	}
	if !appreq(GC(c), 0.6) {
		t.Error("wrong GC content", GC(c))
	}
	if c.String() != "A 1\nC 1\nG 2\nT 1\n" {
		t.Errorf("Got %q", c.String())
	}
	if e := NewComposition(mustDecode(t, "ACGTACGT")).Entropy(); !appreq(e, math.Log(4)) {
		t.Error("wrong entropy", e)
	}
	if e := NewComposition(mustDecode(t, "AAAA")).Entropy(); !appreq(e, 0) {
		t.Error("wrong entropy", e)
	}
	if e := NewComposition[bio.Nucleotide]().Entropy(); e != 0 {
		t.Error("entropy of nothing is", e)
	}

	aa, _ := bio.DecodeSequence[bio.AminoAcid]("MKV*K")
	ac := NewComposition(aa)
	if ac.Counts[bio.Lys] != 2 || !appreq(ac.Fraction(bio.Stop), 0.2) {
		t.Error("wrong amino acid composition", ac)
	}
}

func TestGCStats(t *testing.T) {
	mean, std := GCStats(mustDecode(t, "GG"), mustDecode(t, "AA"), mustDecode(t, ""))
	if !appreq(mean, 0.5) || !appreq(std, math.Sqrt(0.5)) {
		t.Error("wrong GC stats", mean, std)
	}
	mean, std = GCStats(mustDecode(t, "GTAAAAC"))
	if !appreq(mean, 2./7) || std != 0 {
		t.Error("wrong GC stats for one sequence", mean, std)
	}
	if mean, _ := GCStats(); mean != 0 {
		t.Error("GC of no sequences is", mean)
	}
}

func TestUsagePlot(t *testing.T) {
	u := Count(mustDecode(t, "ATGAAAAAATAACTG"))
	if _, err := UsagePlot(u, nil); err != nil {
		t.Error(err)
	}
	fn := filepath.Join(t.TempDir(), "usage.svg")
	if err := SaveUsagePlot(u, F3X4(u), fn); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(fn); err != nil || fi.Size() == 0 {
		t.Error("plot file is not written", err)
	}
}
