package strmatch

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestPrefixFunc(t *testing.T) {
	assert.Equal(t, []int{0, 0, 1, 2, 3, 4, 0}, PrefixFunc("abababc"))
	assert.Equal(t, []int{0, 1, 2, 3}, PrefixFunc("aaaa"))
	assert.Empty(t, PrefixFunc(""))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index("anything", ""))
	assert.Equal(t, 2, Index("ababc", "abc"))
	assert.Equal(t, -1, Index("ababab", "abc"))
	assert.Equal(t, -1, Index("ab", "abc"))
}

func TestIndexAll(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4}, IndexAll("aaaaa", "aaa"))
	assert.Equal(t, []int{0, 2}, IndexAll("ababa", "aba"))
	assert.Nil(t, IndexAll("abc", ""))
	assert.Nil(t, IndexAll("ab", "abc"))
}

func TestZFunc(t *testing.T) {
	assert.Equal(t, []int{7, 1, 0, 2, 3, 1, 0}, ZFunc("aabaaab"))
	assert.Equal(t, []int{5, 4, 3, 2, 1}, ZFunc("aaaaa"))
	assert.Empty(t, ZFunc(""))
}

func TestRadii(t *testing.T) {
	// s = "abaab"
	assert.Equal(t, []int{1, 2, 1, 1, 1}, OddRadii("abaab"))
	assert.Equal(t, []int{0, 0, 0, 2, 0}, EvenRadii("abaab"))
}

func TestLongestPalindrome(t *testing.T) {
	assert.Equal(t, "", LongestPalindrome(""))
	assert.Equal(t, "a", LongestPalindrome("a"))
	assert.Equal(t, "bab", LongestPalindrome("cbabd"))
	assert.Equal(t, "abba", LongestPalindrome("xabbay"))
	assert.Equal(t, "racecar", LongestPalindrome("zzracecarzz"[2:9]))
}

func isPalindrome(s string) bool {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	smallString := gen.SliceOf(gen.RuneRange('a', 'c')).Map(func(rs []rune) string { return string(rs) })

	properties := gopter.NewProperties(parameters)
	properties.Property("Index agrees with strings.Index", prop.ForAll(
		func(text, pattern string) bool {
			return Index(text, pattern) == strings.Index(text, pattern)
		},
		smallString,
		smallString,
	))

	properties.Property("ZFunc entries are actual common prefixes", prop.ForAll(
		func(s string) bool {
			z := ZFunc(s)
			for i := 1; i < len(s); i++ {
				if !strings.HasPrefix(s[i:], s[:z[i]]) {
					return false
				}
				if i+z[i] < len(s) && s[z[i]] == s[i+z[i]] {
					return false // not maximal
				}
			}
			return true
		},
		smallString,
	))

	properties.Property("LongestPalindrome is a palindromic substring of maximal length", prop.ForAll(
		func(s string) bool {
			p := LongestPalindrome(s)
			if len(s) == 0 {
				return p == ""
			}
			if !strings.Contains(s, p) || !isPalindrome(p) {
				return false
			}
			// no longer palindromic substring exists
			for i := 0; i < len(s); i++ {
				for j := i + len(p) + 1; j <= len(s); j++ {
					if isPalindrome(s[i:j]) {
						return false
					}
				}
			}
			return true
		},
		smallString,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
