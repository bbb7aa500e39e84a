package matcher

import "strings"

// group returns submatch group idx from m (as produced by
// regexp.Regexp.FindStringSubmatch), or ok=false if the group doesn't
// exist or matched empty. Per spec 4.1: "capture group i if present and
// non-empty, else undefined".
func group(m []string, idx int) (string, bool) {
	if idx <= 0 || idx >= len(m) || m[idx] == "" {
		return "", false
	}
	return m[idx], true
}

// replace implements the stricter OS/Device substitution function from
// spec 4.1: every $N in tmpl is replaced by group N if defined, else the
// empty string; the result is then trimmed; an empty result after
// trimming is "no value". An empty/absent template is "no value" without
// ever touching the match.
func replace(tmpl string, m []string) (string, bool) {
	if tmpl == "" {
		return "", false
	}

	var b strings.Builder
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '$' && i+1 < len(tmpl) && tmpl[i+1] >= '1' && tmpl[i+1] <= '9' {
			idx := int(tmpl[i+1] - '0')
			if v, ok := group(m, idx); ok {
				b.WriteString(v)
			}
			i++
			continue
		}
		b.WriteByte(tmpl[i])
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", false
	}
	return out, true
}
