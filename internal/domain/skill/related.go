package skill

// relatedSkills maps a parent skill to skills that commonly co-occur with it.
// The table is closed and explicit; relatedness is never inferred. All
// entries are stored normalized.
var relatedSkills = map[string][]string{
	"python":     {"django", "flask", "fastapi", "pandas", "numpy"},
	"javascript": {"react", "node.js", "vue.js", "angular", "typescript"},
	"typescript": {"react", "angular", "node.js"},
	"java":       {"spring", "spring boot", "maven", "hibernate"},
	"go":         {"gin", "fiber", "grpc"},
	"aws":        {"cloud", "docker", "kubernetes", "devops", "terraform"},
	"docker":     {"kubernetes", "ci/cd", "devops"},
	"sql":        {"postgresql", "mysql", "sqlite"},
	"postgresql": {"sql"},
	"machine learning": {"python", "data science", "tensorflow", "pytorch"},
}
