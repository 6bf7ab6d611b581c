package analytics

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	parenSuffix = regexp.MustCompile(`\(([^)]+)\)$`)
	dashSuffix  = regexp.MustCompile(`[\s\p{Zs}]-[\s\p{Zs}](.+)$`)
)

// ResolveTeamName infers a team from a wrestler's display name:
//
//	"Jane Doe (Eagles)"     -> "Eagles"
//	"Mike Johnson - Tigers" -> "Tigers"
//	"Dave Wilson"           -> "Team D"
//
// This is the only place team identity is parsed; every rollup groups by its output.
func ResolveTeamName(name string) string {
	if m := parenSuffix.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := dashSuffix.FindStringSubmatch(name); m != nil {
		return strings.TrimSpace(m[1])
	}
	first, _ := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return "Team "
	}
	return "Team " + string(unicode.ToUpper(first))
}
