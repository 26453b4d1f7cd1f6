package sieve

import (
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/bft-labs/primes/internal/domain"
	"github.com/bft-labs/primes/pkg/log"
	"github.com/bft-labs/primes/pkg/prime"
)

// maxBaseLimit bounds the base-prime pre-pass; about 3.9M primes fit below it.
const maxBaseLimit uint64 = 1 << 26

// maxUint is the largest bitset index on this platform.
const maxUint = uint64(^uint(0))

// Sieve computes primes in ranges. The zero value is not usable; use New.
// A Sieve holds no per-query state and may be reused.
type Sieve struct {
	maxCandidates uint64
	logger        log.Logger
}

// New creates a Sieve with the given options.
func New(opts ...Option) *Sieve {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sieve{
		maxCandidates: o.maxCandidates,
		logger:        o.logger,
	}
}

// MaxCandidates returns the candidate budget of s.
func (s *Sieve) MaxCandidates() uint64 {
	return s.maxCandidates
}

// PrimesInRange returns the primes in [min(a,b), max(a,b)] using the default budget.
func PrimesInRange(a, b uint64) ([]uint64, error) {
	return New().PrimesInRange(a, b)
}

// PrimesInRange returns the primes in [min(a,b), max(a,b)] in ascending order.
// It returns an error matching domain.ErrResourceExhausted, and no primes,
// when the range holds more candidates than the budget allows.
func (s *Sieve) PrimesInRange(a, b uint64) ([]uint64, error) {
	r := domain.NewRange(a, b)
	span, ok := r.Span()
	if !ok || span > s.maxCandidates || span > maxUint {
		err := &domain.RangeTooLargeError{Range: r, Span: span, Limit: s.maxCandidates, Overflow: !ok}
		s.logger.Warn("range exceeds sieve budget",
			log.Uint64("start", r.Start),
			log.Uint64("end", r.End),
			log.Uint64("limit", s.maxCandidates),
		)
		return nil, err
	}

	began := time.Now()

	composite := bitset.New(uint(span))
	bases, complete := s.basePrimes(r)
	for _, p := range bases {
		strikeBase(composite, r, p)
	}

	primes := sweep(composite, r, !complete)

	s.logger.Debug("range sieved",
		log.Uint64("start", r.Start),
		log.Uint64("end", r.End),
		log.Uint64("span", span),
		log.Int("bases", len(bases)),
		log.Bool("trial", !complete),
		log.Int("primes", len(primes)),
		log.Duration("elapsed", time.Since(began)),
	)
	return primes, nil
}

// basePrimes returns every prime p < r.Start with p*p <= r.End.
// complete is false when that set is too large to build, in which case the
// sweep has to confirm each candidate by trial division.
func (s *Sieve) basePrimes(r domain.Range) (bases []uint64, complete bool) {
	if r.Start < 3 {
		return nil, true
	}
	limit := prime.Sqrt(r.End)
	if limit > r.Start-1 {
		limit = r.Start - 1
	}
	if limit < 2 {
		return nil, true
	}
	if limit > maxBaseLimit || limit-1 > s.maxCandidates {
		return nil, false
	}

	base := domain.Range{Start: 2, End: limit}
	span, _ := base.Span()
	return sweep(bitset.New(uint(span)), base, false), true
}

// sweep walks r in ascending order, records every candidate that is still
// unmarked and strikes its multiples. With confirm set, unmarked candidates
// are checked with prime.IsPrime before being recorded.
func sweep(composite *bitset.BitSet, r domain.Range, confirm bool) []uint64 {
	primes := make([]uint64, 0)
	for v := r.Start; ; v++ {
		if v >= 2 && !composite.Test(uint(v-r.Start)) && (!confirm || prime.IsPrime(v)) {
			primes = append(primes, v)
			strikeMultiples(composite, r, v)
		}
		if v == r.End {
			break
		}
	}
	return primes
}

// strikeMultiples marks 2p, 3p, ... up to r.End. p lies inside r.
func strikeMultiples(composite *bitset.BitSet, r domain.Range, p uint64) {
	for m := p; r.End-m >= p; {
		m += p
		composite.Set(uint(m - r.Start))
	}
}

// strikeBase marks the multiples of a base prime p < r.Start that fall in r,
// starting no lower than p*p.
func strikeBase(composite *bitset.BitSet, r domain.Range, p uint64) {
	m := r.Start
	if rem := m % p; rem != 0 {
		gap := p - rem
		if r.End-m < gap {
			return
		}
		m += gap
	}
	if sq := p * p; m < sq {
		if sq > r.End {
			return
		}
		m = sq
	}

	composite.Set(uint(m - r.Start))
	for r.End-m >= p {
		m += p
		composite.Set(uint(m - r.Start))
	}
}
