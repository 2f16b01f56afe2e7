package adapter

import "strings"

// parseWhitelistList extracts names from a "whitelist list" reply such as
//
//	There are 2 whitelisted player(s): Alice, Bob
//
// Text after the first colon is split on commas. Without a colon the whole
// reply is split on commas if it has any, otherwise it is taken as a single
// name. Empty entries are dropped and order is preserved.
func parseWhitelistList(raw string) []string {
	if _, after, found := strings.Cut(raw, ":"); found {
		return splitNames(after)
	}

	if strings.Contains(raw, ",") {
		return splitNames(raw)
	}

	if name := strings.TrimSpace(raw); name != "" {
		return []string{name}
	}
	return []string{}
}

func splitNames(s string) []string {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
