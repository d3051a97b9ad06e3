package domain

// Dashboard groups the catalogue by difficulty tier.
type Dashboard struct {
	Title              string `json:"lab_title"`
	Labs               []*Lab `json:"labs"`
	BeginnerLabs       []*Lab `json:"beginner_labs"`
	IntermediateLabs   []*Lab `json:"intermediate_labs"`
	AdvancedLabs       []*Lab `json:"advanced_labs"`
	TotalLabs          int    `json:"total_labs"`
	EstimatedTotalTime int    `json:"estimated_total_time"`
}

// minutes per lab used for the dashboard estimate
const (
	beginnerMinutes     = 10
	intermediateMinutes = 22
	advancedMinutes     = 30
)

func NewDashboard(labs []*Lab) *Dashboard {
	d := &Dashboard{
		Title:            "XSS Labs Dashboard",
		Labs:             labs,
		BeginnerLabs:     []*Lab{},
		IntermediateLabs: []*Lab{},
		AdvancedLabs:     []*Lab{},
		TotalLabs:        len(labs),
	}
	for _, l := range labs {
		switch l.Difficulty {
		case DifficultyBeginner:
			d.BeginnerLabs = append(d.BeginnerLabs, l)
		case DifficultyIntermediate:
			d.IntermediateLabs = append(d.IntermediateLabs, l)
		case DifficultyAdvanced:
			d.AdvancedLabs = append(d.AdvancedLabs, l)
		}
	}
	if len(labs) > 0 {
		total := beginnerMinutes*len(d.BeginnerLabs) +
			intermediateMinutes*len(d.IntermediateLabs) +
			advancedMinutes*len(d.AdvancedLabs)
		d.EstimatedTotalTime = total / len(labs)
	}
	return d
}
