/*
Seqcode decodes a nucleotide sequence, prints it back together with
its reverse complement and its translation using the standard genetic
code.

The basic usage of seqcode looks like this:

	seqcode --nts GTAAAAC

IUPAC degenerate nucleotides are accepted with --degenerate (no
translation is performed then):

	seqcode --degenerate --nts GTANYKR

Sequences can be read from a FASTA file, codon usage and composition
statistics can be printed and plotted:

	seqcode --fasta genes.fst --usage --stats --plot usage.png

To see all the options run:

	seqcode -h
*/
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/seqcode/bio"
	"bitbucket.org/Davydov/seqcode/codon"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("seqcode")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("seqcode", "nucleotide sequence decoder and translator").Version(version)

	// input
	nts        = app.Flag("nts", "nucleotide input").String()
	fastaF     = app.Flag("fasta", "read sequences from a FASTA file").ExistingFile()
	degenerate = app.Flag("degenerate", "accept IUPAC degenerate nucleotides (disables translation)").Bool()

	// output
	threeLetter   = app.Flag("three", "print translation using three-letter codes").Bool()
	usage         = app.Flag("usage", "print codon usage and expected (F3X4) frequencies").Bool()
	cFreqFileName = app.Flag("cfreqfn", "expected codon frequencies file (overrides F3X4)").ExistingFile()
	stats         = app.Flag("stats", "print composition statistics").Bool()
	plotF         = app.Flag("plot", "write codon usage plot to a file (png, svg, pdf, eps)").String()
	jsonF         = app.Flag("json", "write json output to a file").String()

	// logging
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

// readRecords returns input records either from --nts or from the
// FASTA file.
func readRecords() (bio.Records, error) {
	if *fastaF == "" {
		return bio.Records{{Sequence: *nts}}, nil
	}
	f, err := os.Open(*fastaF)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := bio.ParseFasta(f)
	if err != nil {
		return nil, err
	}
	if *nts != "" {
		recs = append(bio.Records{{Name: "nts", Sequence: *nts}}, recs...)
	}
	return recs, nil
}

// processExact decodes and translates an exact nucleotide record.
func processExact(rec bio.Record) (*RecordSummary, bio.Sequence[bio.Nucleotide], error) {
	seq, err := bio.DecodeRecord[bio.Nucleotide](rec)
	if err != nil {
		return nil, seq, err
	}
	prot, err := bio.Translate(seq)
	if err != nil {
		return nil, seq, err
	}
	rs := &RecordSummary{
		Name:              rec.Name,
		Sequence:          seq.Encode(),
		ReverseComplement: bio.ReverseComplement(seq).Encode(),
		Translation:       prot.Encode(),
		ThreeLetter:       bio.EncodeThreeLetter(prot),
		Entropy:           codon.NewComposition(seq).Entropy(),
		Codons:            prot.Len(),
		Trailing:          seq.Len() % 3,
	}
	if rs.Trailing > 0 {
		log.Infof("%d trailing nucleotide(s) are not translated", rs.Trailing)
	}
	return rs, seq, nil
}

// processDegenerate decodes a degenerate nucleotide record.
func processDegenerate(rec bio.Record) (*RecordSummary, error) {
	seq, err := bio.DecodeRecord[bio.DegenerateNucleotide](rec)
	if err != nil {
		return nil, err
	}
	ambiguous := 0
	for i := 0; i < seq.Len(); i++ {
		if !seq.At(i).IsExact() {
			ambiguous++
		}
	}
	log.Infof("%d ambiguous position(s)", ambiguous)
	it := seq.Codons()
	for {
		i := it.Offset() / 3
		c, ok := it.Next()
		if !ok {
			break
		}
		log.Debugf("codon %d: %s", i, c)
	}
	return &RecordSummary{
		Name:              rec.Name,
		Sequence:          seq.Encode(),
		ReverseComplement: bio.ReverseComplement(seq).Encode(),
		Entropy:           codon.NewComposition(seq).Entropy(),
		Codons:            seq.Len() / 3,
		Trailing:          seq.Len() % 3,
	}, nil
}

func run(w io.Writer) (summary *RunSummary, err error) {
	startTime := time.Now()
	summary = &RunSummary{
		Version:     version,
		CommandLine: os.Args,
	}

	recs, err := readRecords()
	if err != nil {
		return nil, err
	}
	log.Infof("Read %d sequence(s)", len(recs))

	cu := make(codon.Usage, 64)
	var seqs []bio.Sequence[bio.Nucleotide]

	for _, rec := range recs {
		if rec.Name != "" {
			fmt.Fprintln(w, ">"+rec.Name)
		}
		fmt.Fprintln(w, "nts value is", rec.Sequence)
		var rs *RecordSummary
		if *degenerate {
			rs, err = processDegenerate(rec)
		} else {
			var seq bio.Sequence[bio.Nucleotide]
			rs, seq, err = processExact(rec)
			if err == nil {
				cu.Add(seq)
				seqs = append(seqs, seq)
			}
		}
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(w, "nts object value is", rs.Sequence)
		fmt.Fprintln(w, "reverse complement is", rs.ReverseComplement)
		if !*degenerate {
			fmt.Fprintln(w, "translation is", rs.Translation)
			if *threeLetter {
				fmt.Fprintf(w, "three-letter translation is %q\n", rs.ThreeLetter)
			}
		}
		summary.Records = append(summary.Records, *rs)
	}

	if len(seqs) > 0 {
		summary.Usage = make(map[string]int, len(cu))
		for c, n := range cu {
			summary.Usage[c.Encode()] = n
		}
		summary.GCMean, summary.GCStdDev = codon.GCStats(seqs...)
	}

	if *usage || *plotF != "" {
		if len(seqs) == 0 {
			log.Warning("Codon usage is only computed for exact nucleotide sequences")
		} else if err := printUsage(w, cu); err != nil {
			return nil, err
		}
	}

	if *stats {
		printStats(w, summary, seqs)
	}

	summary.TotalTime = time.Since(startTime).Seconds()
	return summary, nil
}

// expectedFrequency reads expected codon frequencies from a file or
// computes F3X4 frequencies.
func expectedFrequency(cu codon.Usage) (codon.Frequency, error) {
	if *cFreqFileName == "" {
		log.Info("F3X4 frequency")
		return codon.F3X4(cu), nil
	}
	f, err := os.Open(*cFreqFileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return codon.ReadFrequency(f)
}

func printUsage(w io.Writer, cu codon.Usage) error {
	expected, err := expectedFrequency(cu)
	if err != nil {
		return err
	}
	log.Debug(expected)
	if *usage {
		observed := cu.Frequency()
		rscu := cu.RSCU()
		fmt.Fprintf(w, "codons: %d, stop codons: %d\n", cu.Total(), cu.Stops())
		fmt.Fprintln(w, "codon\taa\tcount\tfreq\texpected\tRSCU")
		for i := 0; i < codon.NCodon; i++ {
			cs := codon.NumCodon[byte(i)]
			c, _ := bio.ParseCodon[bio.Nucleotide](cs)
			fmt.Fprintf(w, "%s\t%c\t%d\t%.4f\t%.4f\t%.3f\n",
				cs, bio.GeneticCode[cs], cu[c], observed[i], expected[i], rscu[cs])
		}
	}
	if *plotF != "" {
		if err := codon.SaveUsagePlot(cu, expected, *plotF); err != nil {
			return err
		}
		log.Infof("Codon usage plot written to %s", *plotF)
	}
	return nil
}

func printStats(w io.Writer, summary *RunSummary, seqs []bio.Sequence[bio.Nucleotide]) {
	for _, rs := range summary.Records {
		fmt.Fprintf(w, "%s\tlength=%d\tcodons=%d\tentropy=%.4f\n",
			rs.Name, len(rs.Sequence), rs.Codons, rs.Entropy)
	}
	if len(seqs) > 0 {
		comp := codon.NewComposition(seqs...)
		fmt.Fprint(w, comp)
		fmt.Fprintf(w, "GC=%.4f, mean GC=%.4f, sd=%.4f\n",
			codon.GC(comp), summary.GCMean, summary.GCStdDev)
	}
}

// writeJSON writes the run summary to a file.
func writeJSON(summary *RunSummary, fn string) error {
	j, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	log.Debug(string(j))
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if _, err := f.Write(j); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "seqcode")
	logging.SetLevel(level, "codon")

	log.Info(version)
	log.Info("Command line:", os.Args)

	if *nts == "" && *fastaF == "" {
		app.Fatalf("either --nts or --fasta is required")
	}

	summary, err := run(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	log.Noticef("Running time: %v", time.Duration(summary.TotalTime*float64(time.Second)))

	if *jsonF != "" {
		if err := writeJSON(summary, *jsonF); err != nil {
			log.Fatal("Error writing json output file:", err)
		}
	}
}
