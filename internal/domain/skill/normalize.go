package skill

import (
	"sort"
	"strings"
)

// Normalize canonicalizes a free-text skill token. It lower-cases and trims;
// no stemming. Normalizing an already-normalized token returns it unchanged.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeAll normalizes every token and drops empties and duplicates.
// Order of first appearance is preserved.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		n := Normalize(r)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// Relation splits a required skill list against a candidate skill list.
// Exact holds required skills the candidate has verbatim (case-insensitive).
// Related maps a required skill to the candidate skills it is related to via
// the fixed co-occurrence table. Missing holds required skills with neither
// an exact nor a related match.
type Relation struct {
	Exact   []string
	Related map[string][]string
	Missing []string
}

func Relate(candidate, required []string) Relation {
	cand := make(map[string]struct{}, len(candidate))
	for _, s := range NormalizeAll(candidate) {
		cand[s] = struct{}{}
	}

	rel := Relation{
		Exact:   make([]string, 0),
		Related: make(map[string][]string),
		Missing: make([]string, 0),
	}

	for _, req := range NormalizeAll(required) {
		if _, ok := cand[req]; ok {
			rel.Exact = append(rel.Exact, req)
			continue
		}

		linked := relatedCandidates(req, cand)
		if len(linked) > 0 {
			rel.Related[req] = linked
			continue
		}

		rel.Missing = append(rel.Missing, req)
	}

	sort.Strings(rel.Exact)
	sort.Strings(rel.Missing)
	return rel
}

// relatedCandidates returns the candidate skills linked to req via the table,
// in sorted order. A link exists when req is a parent of a candidate skill or
// a candidate skill is a parent of req.
func relatedCandidates(req string, cand map[string]struct{}) []string {
	linked := make(map[string]struct{})

	for _, child := range relatedSkills[req] {
		if _, ok := cand[child]; ok {
			linked[child] = struct{}{}
		}
	}

	for c := range cand {
		for _, child := range relatedSkills[c] {
			if child == req {
				linked[c] = struct{}{}
				break
			}
		}
	}

	if len(linked) == 0 {
		return nil
	}
	out := make([]string, 0, len(linked))
	for s := range linked {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
