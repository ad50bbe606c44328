package utils

// this package provides some generic (in both senses of the word) algorithmic conveniences.

import (
	"golang.org/x/exp/constraints"
)

// Permute operates in-place but is not thread-safe; it uses the permutation for scratching
// permutation[i] signifies which index slice[i] is going to
func Permute[T any](slice []T, permutation []int) {
	var cached T
	for next := 0; next < len(permutation); next++ {

		cached = slice[next]
		j := permutation[next]
		permutation[next] = ^j
		for j >= 0 {
			cached, slice[j] = slice[j], cached
			j, permutation[j] = permutation[j], ^permutation[j]
		}
		permutation[next] = ^permutation[next]
	}
	for i := range permutation {
		permutation[i] = ^permutation[i]
	}
}

func Map[T, S any](in []T, f func(T) S) []S {
	out := make([]S, len(in))
	for i, t := range in {
		out[i] = f(t)
	}
	return out
}

func MapRange[S any](begin, end int, f func(int) S) []S {
	out := make([]S, end-begin)
	for i := begin; i < end; i++ {
		out[i] = f(i)
	}
	return out
}

// InvertPermutation input permutation must contain exactly 0, ..., len(permutation)-1
func InvertPermutation(permutation []int) []int {
	res := make([]int, len(permutation))
	for i := range permutation {
		res[permutation[i]] = i
	}
	return res
}

// LowerBoundFunc returns the smallest i in [0, end) with eval(i) >= target,
// or end when there is none. eval must be non-decreasing over the domain.
func LowerBoundFunc[T constraints.Ordered](eval func(int) T, end int, target T) int {
	var start int
	for start < end {
		mid := int(uint(start+end) >> 1)
		if eval(mid) < target {
			start = mid + 1
		} else {
			end = mid
		}
	}
	return start
}
