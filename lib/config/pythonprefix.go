package config

import (
	"sort"
	"strings"
)

// MergePrefixPaths combines the compiled-in python prefix list with a user
// override. Both are colon-separated path lists; empty segments are dropped,
// duplicates collapse, and the result is emitted in ascending lexicographic
// order as one colon-joined string. The user list may be empty.
func MergePrefixPaths(defaults, user string) string {
	seen := make(map[string]struct{})
	var prefixes []string

	collect := func(list string) {
		for _, p := range strings.Split(list, ":") {
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			prefixes = append(prefixes, p)
		}
	}
	collect(defaults)
	collect(user)

	sort.Strings(prefixes)
	return strings.Join(prefixes, ":")
}
