// Package args normalizes a raw argument vector into the token stream
// the dispatcher consumes: clustered short flags are expanded one flag
// per token, --name=value forms are split in two, and a literal "--"
// becomes an internal end-of-options marker with everything after it
// passed through untouched.
package args

import "strings"

// EndOfOptions replaces a literal "--" in the normalized stream. The
// leading NUL byte keeps it from colliding with any real argv token.
const EndOfOptions = "\x00--"

// valueShortFlags are the short flags that take a value. When one
// appears inside a cluster with characters remaining, the remainder is
// that flag's value and the expansion stops there: -L2 becomes -L 2.
const valueShortFlags = "Lo"

// Normalize rewrites raw into the dispatcher's token stream. It is a
// pure transformation with no side effects.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))

	for i, tok := range raw {
		switch {
		case tok == "--":
			out = append(out, EndOfOptions)
			out = append(out, raw[i+1:]...)
			return out

		case strings.HasPrefix(tok, "--"):
			if name, value, found := strings.Cut(tok, "="); found {
				out = append(out, name, value)
			} else {
				out = append(out, tok)
			}

		case len(tok) > 2 && tok[0] == '-':
			out = append(out, expandCluster(tok[1:])...)

		default:
			out = append(out, tok)
		}
	}

	return out
}

// expandCluster splits a short-flag cluster like "Lv" into "-L", "-v",
// left to right. A value-taking flag with characters after it consumes
// the rest of the cluster as its value.
func expandCluster(cluster string) []string {
	expanded := make([]string, 0, len(cluster))
	for i := 0; i < len(cluster); i++ {
		expanded = append(expanded, "-"+string(cluster[i]))
		if strings.IndexByte(valueShortFlags, cluster[i]) >= 0 && i < len(cluster)-1 {
			expanded = append(expanded, cluster[i+1:])
			break
		}
	}
	return expanded
}
