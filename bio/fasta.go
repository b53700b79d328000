package bio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Record is a named sequence text read from a FASTA file.
type Record struct {
	Name     string
	Sequence string
}

// Records stores multiple FASTA records.
type Records []Record

// ParseFasta parses FASTA records from a reader. Spaces inside
// sequence lines are removed, the case is preserved.
func ParseFasta(rd io.Reader) (recs Records, err error) {
	recs = make(Records, 0, 10)
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			recs = append(recs, Record{Name: line[1:]})
		} else {
			if len(recs) == 0 {
				return nil, errors.New("sequence w/o prefix")
			}
			recs[len(recs)-1].Sequence += strings.Replace(line, " ", "", -1)
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		s += seq[i:end] + "\n"
	}
	return
}

// String returns a record in FASTA format.
func (rec Record) String() (s string) {
	s = ">" + rec.Name + "\n" + Wrap(rec.Sequence, 80)
	return
}

// String returns records in FASTA format.
func (recs Records) String() (s string) {
	for _, rec := range recs {
		s += rec.String()
	}
	if len(s) == 0 {
		return
	}
	return s[:len(s)-1]
}

// DecodeRecord decodes the record sequence text.
func DecodeRecord[S Symbol[S]](rec Record) (Sequence[S], error) {
	return DecodeSequence[S](rec.Sequence)
}
