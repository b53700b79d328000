package bio

// Codon is a fixed window of three symbols.
type Codon[S Symbol[S]] [3]S

// NewCodon creates a codon from three symbols.
func NewCodon[S Symbol[S]](s1, s2, s3 S) Codon[S] {
	return Codon[S]{s1, s2, s3}
}

// ParseCodon creates a codon from a three-letter text.
func ParseCodon[S Symbol[S]](text string) (c Codon[S], err error) {
	rs := []rune(text)
	if len(rs) != 3 {
		return c, &CodonLengthError{Text: text}
	}
	for i, r := range rs {
		c[i], err = decode[S](r)
		if err != nil {
			return Codon[S]{}, err
		}
	}
	return c, nil
}

// CodonFromSlice copies three symbols into a codon.
func CodonFromSlice[S Symbol[S]](s []S) (Codon[S], error) {
	if len(s) != 3 {
		return Codon[S]{}, &CodonLengthError{Text: NewSequence(s...).Encode()}
	}
	return Codon[S]{s[0], s[1], s[2]}, nil
}

// Encode returns the three upper-case letters of the codon.
func (c Codon[S]) Encode() string {
	return string([]byte{c[0].Encode(), c[1].Encode(), c[2].Encode()})
}

func (c Codon[S]) String() string {
	return c.Encode()
}
