// Package wildcard implements the glob-style matching used by catalog
// filters. Patterns support '*' (any run of characters, including empty)
// and '?' (exactly one character); matching is case-insensitive.
package wildcard

import "strings"

func Match(pattern, s string) bool {
	return match(strings.ToLower(pattern), strings.ToLower(s))
}

func match(pattern, s string) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			// collapse consecutive stars
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			for i := 0; i <= len(s); i++ {
				if match(pattern, s[i:]) {
					return true
				}
			}
			return false
		case '?':
			if len(s) == 0 {
				return false
			}
		default:
			if len(s) == 0 || pattern[0] != s[0] {
				return false
			}
		}
		pattern = pattern[1:]
		s = s[1:]
	}
	return len(s) == 0
}
