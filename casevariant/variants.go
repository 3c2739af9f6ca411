package casevariant

import (
	"errors"
	"fmt"
)

// MaxLetters is the largest number of letters a seed may contain. The variant
// index of a candidate must fit in a uint64.
const MaxLetters = 63

// ErrNotVariant is returned by VariantIndex when the candidate is not a case
// variant of the seed.
var ErrNotVariant = errors.New("candidate is not a case variant of the seed")

// Enumerator produces the case variants of a seed one at a time. Variant i
// upper-cases letter j (counted left to right among the letters of the seed)
// iff bit k-1-j of i is set, so the rightmost letter varies fastest.
//
// An Enumerator cannot be rewound; call Variants again to restart.
type Enumerator struct {
	letters []int
	buf     []byte
	seed    string
	total   uint64
	next    uint64
	index   uint64
}

// Variants returns an Enumerator over every case variant of seed. The seed must
// consist of ASCII digits and lowercase ASCII letters only.
func Variants(seed string) (*Enumerator, error) {
	letters, err := parseSeed(seed)
	if err != nil {
		return nil, err
	}

	return &Enumerator{
		letters: letters,
		buf:     []byte(seed),
		seed:    seed,
		total:   uint64(1) << uint(len(letters)),
	}, nil
}

// Next advances to the next variant. It returns false once all variants have
// been produced.
func (e *Enumerator) Next() bool {
	if e.next >= e.total {
		return false
	}
	e.index = e.next
	e.next++

	k := len(e.letters)
	for j, pos := range e.letters {
		c := e.seed[pos]
		if (e.index>>uint(k-1-j))&1 == 1 {
			c = toUpper(c)
		}
		e.buf[pos] = c
	}
	return true
}

// Candidate returns the current variant.
func (e *Enumerator) Candidate() string {
	return string(e.buf)
}

// Index returns the variant index of the current candidate.
func (e *Enumerator) Index() uint64 {
	return e.index
}

// Len returns the total number of variants, 2^k for a seed with k letters.
func (e *Enumerator) Len() uint64 {
	return e.total
}

// Letters returns the number of letters in the seed.
func (e *Enumerator) Letters() int {
	return len(e.letters)
}

// VariantIndex returns the index under which Variants(seed) produces
// candidate.
func VariantIndex(seed, candidate string) (uint64, error) {
	letters, err := parseSeed(seed)
	if err != nil {
		return 0, err
	}
	if len(candidate) != len(seed) {
		return 0, fmt.Errorf("%w: length %d, want %d", ErrNotVariant,
			len(candidate), len(seed))
	}

	isLetter := make([]bool, len(seed))
	for _, pos := range letters {
		isLetter[pos] = true
	}
	for i := 0; i < len(seed); i++ {
		if !isLetter[i] && candidate[i] != seed[i] {
			return 0, fmt.Errorf("%w: position %d", ErrNotVariant, i)
		}
	}

	var index uint64
	k := len(letters)
	for j, pos := range letters {
		switch candidate[pos] {
		case seed[pos]:
		case toUpper(seed[pos]):
			index |= uint64(1) << uint(k-1-j)
		default:
			return 0, fmt.Errorf("%w: position %d", ErrNotVariant, pos)
		}
	}
	return index, nil
}

// parseSeed validates seed and returns the positions of its letters.
func parseSeed(seed string) ([]int, error) {
	if seed == "" {
		return nil, searchError(ErrInvalidSeed, "seed is empty", nil)
	}

	var letters []int
	for i := 0; i < len(seed); i++ {
		c := seed[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
			letters = append(letters, i)
		default:
			str := fmt.Sprintf("invalid seed character %q at position %d "+
				"(want digits and lowercase letters)", c, i)
			return nil, searchError(ErrInvalidSeed, str, nil)
		}
	}

	if len(letters) > MaxLetters {
		str := fmt.Sprintf("seed has %d letters, at most %d are supported",
			len(letters), MaxLetters)
		return nil, searchError(ErrSearchSpaceTooLarge, str, nil)
	}
	return letters, nil
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
