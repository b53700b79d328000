package main

// RunSummary stores seqcode run summary information.
type RunSummary struct {
	// Version stores seqcode version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Records holds results for every input sequence.
	Records []RecordSummary `json:"records"`
	// Usage is the codon usage of all exact nucleotide records.
	Usage map[string]int `json:"usage,omitempty"`
	// GCMean is the mean GC content of exact nucleotide records.
	GCMean float64 `json:"gcMean,omitempty"`
	// GCStdDev is the standard deviation of GC content.
	GCStdDev float64 `json:"gcStdDev,omitempty"`
	// Time is the computations time in seconds.
	TotalTime float64 `json:"time"`
}

// RecordSummary stores results for one sequence.
type RecordSummary struct {
	Name              string `json:"name,omitempty"`
	Sequence          string `json:"sequence"`
	ReverseComplement string `json:"reverseComplement"`
	// Translation is empty for degenerate sequences.
	Translation string `json:"translation,omitempty"`
	// ThreeLetter is the translation in three-letter codes.
	ThreeLetter string `json:"threeLetter,omitempty"`
	// Entropy is the Shannon entropy of the symbol composition.
	Entropy float64 `json:"entropy"`
	// Codons is the number of full codons in the first reading frame.
	Codons int `json:"codons"`
	// Trailing is the number of nucleotides after the last full codon.
	Trailing int `json:"trailing,omitempty"`
}
