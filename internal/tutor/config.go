package tutor

// Config holds explanation request settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	// HistoryLimit caps how many earlier wrong commands go into the prompt.
	HistoryLimit int
	// RevealAfter is the number of wrong attempts after which the tutor may
	// spell out the expected command.
	RevealAfter int
}

// DefaultConfig returns the settings the practice screen uses.
func DefaultConfig() Config {
	return Config{
		MaxTokens:    400,
		Temperature:  0.3,
		HistoryLimit: 5,
		RevealAfter:  3,
	}
}
