package search

var synonyms = map[string][]string{
	"frontend":   {"front end", "ui engineer", "react", "web developer"},
	"backend":    {"back end", "server", "api engineer"},
	"full stack": {"fullstack", "frontend", "backend"},
	"devops":     {"platform engineer", "infrastructure", "sre", "kubernetes"},
	"ml":         {"machine learning", "data scientist"},
	"data":       {"data engineer", "analytics"},
	"mobile":     {"ios", "android", "react native"},

	// compact skill aliases
	"golang": {"go"},
	"js":     {"javascript"},
	"ts":     {"typescript"},
	"k8s":    {"kubernetes"},
	"py":     {"python"},
}

func lookupSynonyms(term string) []string {
	if term == "" {
		return nil
	}
	if v, ok := synonyms[term]; ok {
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	}
	return nil
}
