package casevariant

import (
	"context"
	"encoding/binary"
	"math/big"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// prunedDecodedLen is the decoded length the pruned strategy solves
	// for: a version byte, a 20-byte hash and the checksum.
	prunedDecodedLen = 25

	// prunedPayloadLen is the number of leading decoded bytes covered by
	// the checksum.
	prunedPayloadLen = prunedDecodedLen - checksumLen

	base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

var base58Digits [256]int8

func init() {
	for i := range base58Digits {
		base58Digits[i] = -1
	}
	for i := 0; i < len(base58Alphabet); i++ {
		base58Digits[base58Alphabet[i]] = int8(i)
	}
}

// fixup is the amount the encoded number grows by when the letter at pos is
// switched from upper to lower case.
type fixup struct {
	pos  int
	diff *big.Int
}

type prunedSearch struct {
	ctx       context.Context
	seed      string
	validator Validator
	stats     *Stats

	// base is the candidate with every two-way letter upper-cased.
	base []byte

	// fixups is ordered from the most to the least significant position.
	// suffix[i] is the sum of fixups[i:], with a trailing zero.
	fixups []fixup
	suffix []*big.Int

	nodes   uint64
	matches []Match
	err     error
}

// searchPruned reads the seed as a base-58 number with every letter in upper
// case. Lower-casing a letter adds a fixed amount to that number, and the
// amounts are superincreasing, so once a partial choice pins the top 21 bytes
// the remaining choices are determined by the checksum alone.
func searchPruned(ctx context.Context, seed string, cfg Config,
	emit func(Match)) (*Stats, error) {

	if _, err := parseSeed(seed); err != nil {
		return nil, err
	}

	validator := cfg.Validator
	validator.DecodedLen = prunedDecodedLen

	s := &prunedSearch{
		ctx:       ctx,
		seed:      seed,
		validator: validator,
		stats:     &Stats{},
		base:      []byte(seed),
	}

	n := new(big.Int)
	power := big.NewInt(1)
	radix := big.NewInt(58)
	for i := len(seed) - 1; i >= 0; i-- {
		c := seed[i]
		up := base58Digits[toUpper(c)]
		lo := base58Digits[c]

		switch {
		case up >= 0 && lo >= 0 && up != lo:
			s.base[i] = toUpper(c)
			n.Add(n, new(big.Int).Mul(big.NewInt(int64(up)), power))
			s.fixups = append(s.fixups, fixup{
				pos:  i,
				diff: new(big.Int).Mul(big.NewInt(int64(lo-up)), power),
			})

		case up >= 0:
			s.base[i] = toUpper(c)
			n.Add(n, new(big.Int).Mul(big.NewInt(int64(up)), power))

		case lo >= 0:
			n.Add(n, new(big.Int).Mul(big.NewInt(int64(lo)), power))

		default:
			log.Debugf("Character %q at position %d is not base-58 in "+
				"either case, no variant can be valid", c, i)
			return s.stats, nil
		}
		power.Mul(power, radix)
	}

	for i, j := 0, len(s.fixups)-1; i < j; i, j = i+1, j-1 {
		s.fixups[i], s.fixups[j] = s.fixups[j], s.fixups[i]
	}
	s.suffix = make([]*big.Int, len(s.fixups)+1)
	s.suffix[len(s.fixups)] = new(big.Int)
	for i := len(s.fixups) - 1; i >= 0; i-- {
		s.suffix[i] = new(big.Int).Add(s.suffix[i+1], s.fixups[i].diff)
	}

	log.Debugf("Pruned search over %d two-way letters of %s",
		len(s.fixups), seed)

	s.walk(n, 0, 0)
	if s.err != nil {
		return s.stats, s.err
	}

	sort.Slice(s.matches, func(i, j int) bool {
		return s.matches[i].Index < s.matches[j].Index
	})
	for _, m := range s.matches {
		emit(m)
	}
	return s.stats, nil
}

// walk decides fixups[i:] given the partial number n. Bit j of mask is set
// when fixups[j] has been applied.
func (s *prunedSearch) walk(n *big.Int, i int, mask uint64) {
	if s.err != nil {
		return
	}
	s.nodes++
	if s.nodes%cancelCheckInterval == 1 {
		if err := s.ctx.Err(); err != nil {
			s.err = searchError(ErrCancelled, "search interrupted", err)
			return
		}
	}

	hi := new(big.Int).Add(n, s.suffix[i])
	if new(big.Int).Rsh(n, 32).Cmp(hi.Rsh(hi, 32)) != 0 {
		s.walk(new(big.Int).Add(n, s.fixups[i].diff), i+1, mask|1<<uint(i))
		s.walk(n, i+1, mask)
		return
	}

	s.solve(n, i, mask)
}

// solve finds the unique subset of fixups[i:] that turns the low 32 bits of n
// into the checksum of the fixed top bytes, if there is one.
func (s *prunedSearch) solve(n *big.Int, i int, mask uint64) {
	if n.BitLen() > prunedDecodedLen*8 {
		s.stats.record(Result{Outcome: Invalid, Reason: ReasonLength})
		return
	}

	var decoded [prunedDecodedLen]byte
	n.FillBytes(decoded[:])

	sum := chainhash.DoubleHashB(decoded[:prunedPayloadLen])
	want := uint64(binary.BigEndian.Uint32(sum[:checksumLen]))
	have := uint64(binary.BigEndian.Uint32(decoded[prunedPayloadLen:]))
	if have > want {
		s.stats.record(Result{Outcome: Invalid, Reason: ReasonChecksum})
		return
	}

	for j := i; j < len(s.fixups); j++ {
		diff := s.fixups[j].diff.Uint64()
		if have+diff <= want {
			have += diff
			mask |= 1 << uint(j)
		}
	}
	if have != want {
		s.stats.record(Result{Outcome: Invalid, Reason: ReasonChecksum})
		return
	}

	candidate := make([]byte, len(s.base))
	copy(candidate, s.base)
	for j, f := range s.fixups {
		if mask&(1<<uint(j)) != 0 {
			candidate[f.pos] = s.seed[f.pos]
		}
	}
	s.accept(string(candidate))
}

// accept re-checks a solved candidate with the exact validator, since the
// fixed-width arithmetic ignores how leading '1's decode.
func (s *prunedSearch) accept(candidate string) {
	result := s.validator.Check(candidate)
	s.stats.record(result)
	if result.Outcome != Valid {
		log.Tracef("Discarding %s: %v", candidate, result.Reason)
		return
	}

	index, err := VariantIndex(s.seed, candidate)
	if err != nil {
		log.Errorf("Solved candidate %s is not a variant of %s: %v",
			candidate, s.seed, err)
		return
	}
	log.Tracef("Variant %d is valid: %s", index, candidate)

	s.matches = append(s.matches, Match{
		Address: candidate,
		Index:   index,
		Version: result.Version,
	})
}
