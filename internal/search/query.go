package search

import (
	"strings"
	"unicode"
)

type Query struct {
	Original   string
	Normalized string
	Variants   []string
}

const maxVariants = 10

// NormalizeQuery lowercases the input and strips everything but letters,
// digits, and single spaces.
func NormalizeQuery(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}

	b := strings.Builder{}
	b.Grow(len(input))
	lastWasSpace := false
	for _, r := range input {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			lastWasSpace = false
		case unicode.IsSpace(r):
			if b.Len() == 0 || lastWasSpace {
				continue
			}
			b.WriteByte(' ')
			lastWasSpace = true
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// ExpandQuery builds match variants for a normalized query: the query
// itself plus role and skill synonyms. A compact form of a spaced role name
// ("fullstack") expands to the spaced one.
func ExpandQuery(normalized string) []string {
	normalized = strings.TrimSpace(normalized)
	if normalized == "" {
		return []string{}
	}

	out := make([]string, 0, maxVariants)
	seen := make(map[string]struct{}, maxVariants)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(normalized)

	for _, syn := range lookupSynonyms(normalized) {
		add(syn)
	}

	words := strings.Fields(normalized)
	if len(words) == 1 {
		for key, syns := range synonyms {
			if strings.ReplaceAll(key, " ", "") != words[0] || key == words[0] {
				continue
			}
			add(key)
			for _, syn := range syns {
				add(syn)
			}
			break
		}
	}

	// Multi-word query: expand the first word when it names a role, keeping
	// the rest of the query attached. "backend fintech" includes
	// "server fintech".
	if len(words) >= 2 {
		rest := strings.Join(words[1:], " ")
		for _, syn := range lookupSynonyms(words[0]) {
			add(syn + " " + rest)
		}
	}

	if len(out) > maxVariants {
		out = out[:maxVariants]
	}
	return out
}

func ProcessQuery(input string) Query {
	q := Query{Original: input, Normalized: NormalizeQuery(input)}
	if q.Normalized == "" {
		q.Variants = []string{}
		return q
	}
	q.Variants = ExpandQuery(q.Normalized)
	return q
}
