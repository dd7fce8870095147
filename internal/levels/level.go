package levels

// Example is one annotated command shown in a tutorial.
type Example struct {
	Command     string
	Description string
}

// Tutorial is the reading material shown before a level's terminal.
type Tutorial struct {
	Title    string
	Content  string
	Why      string
	Examples []Example
}

// Exercise is a single graded task. ExpectedCommand may contain a
// pipeline; a submission matching the stage before the first "|" counts.
type Exercise struct {
	Instruction     string
	ExpectedCommand string
	Hint            string
}

// Level is one immutable lesson in the unlock chain.
type Level struct {
	ID            int
	Title         string
	Description   string
	Commands      []string
	Points        int
	EstimatedTime string
	Tutorial      Tutorial
	Exercises     []Exercise
}

// Tier groups levels for display.
type Tier int

const (
	TierBeginner Tier = iota
	TierIntermediate
	TierAdvanced
)

func (t Tier) String() string {
	switch t {
	case TierBeginner:
		return "Beginner"
	case TierIntermediate:
		return "Intermediate"
	default:
		return "Advanced"
	}
}

// Tier returns the display tier of the level, five levels per tier.
func (l Level) Tier() Tier {
	switch {
	case l.ID <= 5:
		return TierBeginner
	case l.ID <= 10:
		return TierIntermediate
	default:
		return TierAdvanced
	}
}

// State is the learner-facing state of a level.
type State int

const (
	StateLocked State = iota
	StateAvailable
	StateCompleted
)

// Icon returns a single-character status indicator.
func (s State) Icon() string {
	switch s {
	case StateCompleted:
		return "✓"
	case StateAvailable:
		return "▸"
	default:
		return "🔒"
	}
}

// Label returns a short descriptor.
func (s State) Label() string {
	switch s {
	case StateCompleted:
		return "Completed"
	case StateAvailable:
		return "Start"
	default:
		return "Locked"
	}
}
