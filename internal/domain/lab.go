package domain

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

type Hint struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Lab is a static descriptor; the catalogue is built once and never mutated.
type Lab struct {
	Key           string     `json:"key"`
	Name          string     `json:"name"`
	Difficulty    Difficulty `json:"difficulty"`
	Description   string     `json:"description"`
	Icon          string     `json:"icon"`
	EstimatedTime string     `json:"estimated_time"`

	PageDescription string `json:"lab_description"`
	SuccessMessage  string `json:"success_message,omitempty"`
	Hints           []Hint `json:"hints"`
}

// URL is the HTML route of the lab.
func (l *Lab) URL() string {
	return "/labs/xss/" + l.Key + "/"
}
