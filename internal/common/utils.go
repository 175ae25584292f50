package common

import "strings"

// ContainsEitherFold reports whether a contains b or b contains a, ignoring case.
func ContainsEitherFold(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// BeforeFirst returns the trimmed text before the first occurrence of sep,
// or the whole trimmed string when sep is absent.
func BeforeFirst(s, sep string) string {
	head, _, _ := strings.Cut(s, sep)
	return strings.TrimSpace(head)
}
