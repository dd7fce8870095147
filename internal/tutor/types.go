// Package tutor asks an LLM why a practice command missed and how to fix it.
package tutor

import "github.com/abhisek/linuxlearn/internal/levels"

// Input describes one wrong submission in the practice terminal.
type Input struct {
	Level     levels.Level
	Exercise  levels.Exercise
	Submitted string
	Output    string
	Cwd       string
	// Earlier wrong commands on the same exercise, oldest first.
	Previous []string
}

// Explanation is the tutor's answer for one submission.
type Explanation struct {
	RequestID        string
	LevelID          int
	Exercise         string
	Explanation      string
	Tip              string
	SuggestedCommand string
}
