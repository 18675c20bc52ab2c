package auth

import (
	"regexp"
	"strings"
	"sync"
)

// Path pattern grammar: a `/`-delimited template where `{name}` matches
// exactly one non-empty path segment and `*` matches any run of characters,
// including `/`. A trailing `*` therefore swallows the remainder of the
// path; the catalog's static-file entries rely on that looseness, so it is
// kept as-is. Literal segments compare case-sensitively, and the whole path
// must match, never a prefix.

var placeholder = regexp.MustCompile(`^\{[^/{}]+\}`)

var (
	patternMu    sync.RWMutex
	patternCache = make(map[string]*regexp.Regexp)
)

func init() {
	// Catalog patterns are fixed at build time; compile them up front so a
	// malformed entry fails at startup, not on first request.
	for _, p := range catalog {
		if _, err := compilePattern(p.Pattern); err != nil {
			panic("auth: invalid pattern " + p.Pattern + ": " + err.Error())
		}
	}
}

// MatchPath reports whether the concrete request path satisfies the
// pattern. Both sides are normalized first: repeated slashes collapse and a
// trailing slash is dropped (except for the bare root).
func MatchPath(pattern, path string) bool {
	re, err := compilePattern(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(normalizePath(path))
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	patternMu.RLock()
	re, ok := patternCache[pattern]
	patternMu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(translatePattern(normalizePath(pattern)))
	if err != nil {
		return nil, err
	}

	patternMu.Lock()
	patternCache[pattern] = re
	patternMu.Unlock()
	return re, nil
}

// translatePattern converts the template into an anchored regular
// expression: `{name}` becomes `[^/]+`, `*` becomes `.*`, everything else
// is quoted literally.
func translatePattern(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			b.WriteString(".*")
			pattern = pattern[1:]
		case '{':
			if loc := placeholder.FindStringIndex(pattern); loc != nil {
				b.WriteString("[^/]+")
				pattern = pattern[loc[1]:]
				continue
			}
			// Unbalanced brace; treat it as a literal.
			b.WriteString(regexp.QuoteMeta("{"))
			pattern = pattern[1:]
		default:
			i := strings.IndexAny(pattern, "*{")
			if i < 0 {
				i = len(pattern)
			}
			b.WriteString(regexp.QuoteMeta(pattern[:i]))
			pattern = pattern[i:]
		}
	}
	b.WriteString("$")
	return b.String()
}

func normalizePath(path string) string {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
