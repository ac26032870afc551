package analyzer

import (
	"regexp"
	"unicode/utf8"
)

// contextPair holds the text captured on each side of one keyword occurrence.
type contextPair struct {
	prefix string
	suffix string
}

// neighborChars collects the single non-space character immediately before and
// after every word-boundary-delimited occurrence of word, case-insensitively.
// Occurrences glued to other word characters are skipped.
func neighborChars(word string, texts []string) (prefixes, suffixes []string) {
	re, err := regexp.Compile(`(?i)(\S)?\s*\b` + regexp.QuoteMeta(word) + `\b\s*(\S)?`)
	if err != nil {
		return nil, nil
	}
	for _, text := range texts {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if m[1] != "" {
				prefixes = append(prefixes, m[1])
			}
			if m[2] != "" {
				suffixes = append(suffixes, m[2])
			}
		}
	}
	return prefixes, suffixes
}

// surroundingContexts captures up to window characters on each side of every
// occurrence of word, clipped to the text bounds.
func surroundingContexts(word string, texts []string, window int) []contextPair {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(word))
	if err != nil {
		return nil
	}
	var pairs []contextPair
	for _, text := range texts {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			pairs = append(pairs, contextPair{
				prefix: lastRunes(text[:loc[0]], window),
				suffix: firstRunes(text[loc[1]:], window),
			})
		}
	}
	return pairs
}

// commonPrefix returns the longest prefix shared by all strings, comparing
// character by character up to the length of the shortest string.
func commonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	runes := make([][]rune, len(strs))
	shortest := 0
	for i, s := range strs {
		runes[i] = []rune(s)
		if len(runes[i]) < len(runes[shortest]) {
			shortest = i
		}
	}
	base := runes[shortest]
	for i, ch := range base {
		for _, r := range runes {
			if r[i] != ch {
				return string(base[:i])
			}
		}
	}
	return string(base)
}

// commonSuffix is the reverse-string variant of commonPrefix.
func commonSuffix(strs []string) string {
	reversed := make([]string, len(strs))
	for i, s := range strs {
		reversed[i] = reverseString(s)
	}
	return reverseString(commonPrefix(reversed))
}

// mostCommon returns the most frequent value; ties go to the first-seen one.
func mostCommon(values []string) string {
	counts := make(map[string]int, len(values))
	var order []string
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	best, bestN := "", 0
	for _, v := range order {
		if counts[v] > bestN {
			best, bestN = v, counts[v]
		}
	}
	return best
}

func reverseString(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// firstRunes returns at most n leading characters of s.
func firstRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// lastRunes returns at most n trailing characters of s.
func lastRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := len(s); i > 0; {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
		count++
		if count == n {
			return s[i:]
		}
	}
	return s
}
