package career

import "strings"

// Level is an ordinal seniority classification.
type Level int

const (
	Junior Level = iota
	Mid
	Senior
	Lead
	Principal
	Manager
)

var levelNames = map[Level]string{
	Junior:    "Junior",
	Mid:       "Mid",
	Senior:    "Senior",
	Lead:      "Lead",
	Principal: "Principal",
	Manager:   "Manager",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "Mid"
}

// Levels serialize by name so stored and cached views stay readable.
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

func (l *Level) UnmarshalJSON(b []byte) error {
	*l = ParseLevel(strings.Trim(string(b), `"`))
	return nil
}

// ParseLevel maps a stored level name back to its ordinal. Unknown names
// default to Mid, mirroring the classifier default.
func ParseLevel(name string) Level {
	for l, n := range levelNames {
		if strings.EqualFold(n, name) {
			return l
		}
	}
	return Mid
}

// levelGroup is one keyword group of the title classifier. Groups are
// checked in order and the first hit wins, so a keyword appearing in an
// earlier group shadows later ones: "lead" sits in the Senior group as well,
// which makes "Senior Lead Engineer" classify as Senior.
type levelGroup struct {
	level    Level
	keywords []string
}

var levelGroups = []levelGroup{
	{Junior, []string{"junior", "entry", "associate", "intern", "0-2"}},
	{Mid, []string{"mid", "intermediate", "3-5"}},
	{Senior, []string{"senior", "lead", "sr", "6+"}},
	{Lead, []string{"lead", "principal", "architect", "staff"}},
	{Manager, []string{"manager", "director", "head of", "vp"}},
}

// ClassifyLevel scans a position title against the ordered keyword groups.
// Titles matching nothing default to Mid.
func ClassifyLevel(title string) Level {
	t := strings.ToLower(title)
	for _, g := range levelGroups {
		for _, kw := range g.keywords {
			if strings.Contains(t, kw) {
				return g.level
			}
		}
	}
	return Mid
}
