// Package strmatch collects the classical linear-time string matching
// templates: KMP prefix function, Z function and Manacher's palindrome
// radii.
package strmatch

// PrefixFunc returns the KMP prefix function of s: pi[i] is the length of
// the longest proper prefix of s[:i+1] that is also a suffix of it.
func PrefixFunc(s string) []int {
	pi := make([]int, len(s))
	for i := 1; i < len(s); i++ {
		j := pi[i-1]
		for j > 0 && s[i] != s[j] {
			j = pi[j-1]
		}
		if s[i] == s[j] {
			j++
		}
		pi[i] = j
	}
	return pi
}

// Index returns the index of the first occurrence of pattern in text, or -1.
// An empty pattern matches at index 0.
func Index(text, pattern string) int {
	if len(pattern) == 0 {
		return 0
	}
	pi := PrefixFunc(pattern)
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != pattern[j] {
			j = pi[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			return i - len(pattern) + 1
		}
	}
	return -1
}

// IndexAll returns the start indices of all (possibly overlapping)
// occurrences of pattern in text.
func IndexAll(text, pattern string) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil
	}
	pi := PrefixFunc(pattern)
	var res []int
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != pattern[j] {
			j = pi[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			res = append(res, i-len(pattern)+1)
			j = pi[j-1]
		}
	}
	return res
}

// ZFunc returns the Z function of s: z[i] is the length of the longest
// common prefix of s and s[i:]; z[0] = len(s).
func ZFunc(s string) []int {
	n := len(s)
	z := make([]int, n)
	if n == 0 {
		return z
	}
	z[0] = n
	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}

// OddRadii returns Manacher radii for odd-length palindromes: the palindrome
// centered at i spans s[i-d[i]+1 : i+d[i]], so its length is 2*d[i]-1.
func OddRadii(s string) []int {
	n := len(s)
	d := make([]int, n)
	l, r := 0, -1
	for i := 0; i < n; i++ {
		k := 1
		if i < r {
			k = min(d[l+r-i], r-i+1)
		}
		for i-k >= 0 && i+k < n && s[i-k] == s[i+k] {
			k++
		}
		d[i] = k
		if i+k-1 > r {
			l, r = i-k+1, i+k-1
		}
	}
	return d
}

// EvenRadii returns Manacher radii for even-length palindromes: the
// palindrome centered between i-1 and i spans s[i-d[i] : i+d[i]], so its
// length is 2*d[i].
func EvenRadii(s string) []int {
	n := len(s)
	d := make([]int, n)
	l, r := 0, -1
	for i := 0; i < n; i++ {
		k := 0
		if i < r {
			k = min(d[l+r-i+1], r-i+1)
		}
		for i-k-1 >= 0 && i+k < n && s[i-k-1] == s[i+k] {
			k++
		}
		d[i] = k
		if i+k-1 > r {
			l, r = i-k, i+k-1
		}
	}
	return d
}

// LongestPalindrome returns a longest palindromic substring of s.
func LongestPalindrome(s string) string {
	if len(s) == 0 {
		return ""
	}
	bestL, bestLen := 0, 1
	for i, k := range OddRadii(s) {
		if 2*k-1 > bestLen {
			bestL, bestLen = i-k+1, 2*k-1
		}
	}
	for i, k := range EvenRadii(s) {
		if 2*k > bestLen {
			bestL, bestLen = i-k, 2*k
		}
	}
	return s[bestL : bestL+bestLen]
}
