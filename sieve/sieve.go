// Package sieve provides prime sieving and integer factorization up to a
// fixed precomputed limit.
package sieve

import (
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Factor is a prime power p^e in a factorization.
type Factor struct {
	P int64
	E int
}

// Sieve holds composite marks and smallest prime factors for [2, limit].
type Sieve struct {
	limit     int64
	composite *bitset.BitSet
	spf       []int32
}

// New runs a linear sieve up to limit inclusive. It panics if limit < 2.
func New(limit int64) *Sieve {
	if limit < 2 {
		panic("sieve: limit must be at least 2")
	}
	s := &Sieve{
		limit:     limit,
		composite: bitset.New(uint(limit + 1)),
		spf:       make([]int32, limit+1),
	}
	primes := make([]int32, 0, limit/2)
	for i := int64(2); i <= limit; i++ {
		if !s.composite.Test(uint(i)) {
			s.spf[i] = int32(i)
			primes = append(primes, int32(i))
		}
		for _, p := range primes {
			if int64(p) > int64(s.spf[i]) || i*int64(p) > limit {
				break
			}
			s.composite.Set(uint(i * int64(p)))
			s.spf[i*int64(p)] = p
		}
	}
	return s
}

// Limit returns the inclusive upper bound the sieve was built for.
func (s *Sieve) Limit() int64 { return s.limit }

// Dump returns the raw state for snapshotting: the limit, the composite
// bitset words and the smallest-prime-factor table. The slices alias the
// sieve state.
func (s *Sieve) Dump() (limit int64, words []uint64, spf []int32) {
	return s.limit, s.composite.Bytes(), s.spf
}

// LoadRaw rebuilds a sieve from the output of Dump.
func LoadRaw(limit int64, words []uint64, spf []int32) *Sieve {
	return &Sieve{
		limit:     limit,
		composite: bitset.From(words),
		spf:       spf,
	}
}

// IsPrime reports whether n is prime. It panics if n exceeds the limit.
func (s *Sieve) IsPrime(n int64) bool {
	if n > s.limit {
		panic("sieve: query exceeds limit")
	}
	return n >= 2 && !s.composite.Test(uint(n))
}

// Primes returns all primes up to the limit in increasing order.
func (s *Sieve) Primes() []int64 {
	res := make([]int64, 0, s.Count())
	for i := int64(2); i <= s.limit; i++ {
		if !s.composite.Test(uint(i)) {
			res = append(res, i)
		}
	}
	return res
}

// Count returns the number of primes up to the limit.
func (s *Sieve) Count() int {
	// composite marks cover [2, limit]; 0 and 1 are never set
	return int(s.limit) - 1 - int(s.composite.Count())
}

// Factorize returns the prime factorization of n with factors in increasing
// order. It uses the smallest-prime-factor table for n <= limit and falls
// back to trial division by sieved primes for larger n, which covers any
// n <= limit^2. It panics if n < 2 or n > limit^2.
func (s *Sieve) Factorize(n int64) []Factor {
	if n < 2 {
		panic("sieve: cannot factorize n < 2")
	}
	if n <= s.limit {
		return s.factorizeSPF(n)
	}
	if n > s.limit*s.limit {
		panic("sieve: n exceeds limit^2")
	}
	var res []Factor
	bound := int64(math.Sqrt(float64(n))) + 1
	for i := int64(2); i <= bound && i <= s.limit; i++ {
		if s.composite.Test(uint(i)) || n%i != 0 {
			continue
		}
		f := Factor{P: i}
		for n%i == 0 {
			n /= i
			f.E++
		}
		res = append(res, f)
		if n == 1 {
			return res
		}
	}
	// leftover is prime
	return append(res, Factor{P: n, E: 1})
}

func (s *Sieve) factorizeSPF(n int64) []Factor {
	var res []Factor
	for n > 1 {
		p := int64(s.spf[n])
		f := Factor{P: p}
		for n > 1 && int64(s.spf[n]) == p {
			n /= p
			f.E++
		}
		res = append(res, f)
	}
	return res
}

// Divisors returns all divisors of n in increasing order. Same bounds as
// Factorize.
func (s *Sieve) Divisors(n int64) []int64 {
	if n == 1 {
		return []int64{1}
	}
	divs := []int64{1}
	for _, f := range s.Factorize(n) {
		k := len(divs)
		pe := int64(1)
		for e := 0; e < f.E; e++ {
			pe *= f.P
			for i := 0; i < k; i++ {
				divs = append(divs, divs[i]*pe)
			}
		}
	}
	slices.Sort(divs)
	return divs
}
