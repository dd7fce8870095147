package tutor

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are LinuxLearn AI, a patient instructor teaching the Linux command line to beginners in a simulated terminal. Learners type commands to complete short exercises. Explain mistakes plainly, without jargon, and keep answers short.`

func buildUserMessage(in Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Level %d: %s\n", in.Level.ID, in.Level.Title)
	if len(in.Level.Commands) > 0 {
		fmt.Fprintf(&b, "Commands taught: %s\n", strings.Join(in.Level.Commands, ", "))
	}
	fmt.Fprintf(&b, "Exercise: %s\n", in.Exercise.Instruction)
	fmt.Fprintf(&b, "Expected command: %s\n", in.Exercise.ExpectedCommand)
	if in.Cwd != "" {
		fmt.Fprintf(&b, "Working directory: %s\n", in.Cwd)
	}

	fmt.Fprintf(&b, "\nLearner typed: %s\n", in.Submitted)
	if out := strings.TrimSpace(in.Output); out != "" {
		fmt.Fprintf(&b, "Terminal output:\n%s\n", out)
	} else {
		b.WriteString("Terminal output: (none)\n")
	}

	prev := in.Previous
	if cfg.HistoryLimit > 0 && len(prev) > cfg.HistoryLimit {
		prev = prev[len(prev)-cfg.HistoryLimit:]
	}
	if len(prev) > 0 {
		b.WriteString("\nEarlier attempts on this exercise:\n")
		for _, p := range prev {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	b.WriteString(`
Instructions:
1. Explain what the typed command does and why it does not complete the exercise.
2. Give one short tip that points toward the right command.
`)
	if mayReveal(in, cfg) {
		b.WriteString("3. The learner has tried several times. Put the expected command in suggested_command.\n")
	} else {
		b.WriteString("3. Do not give away the expected command. Leave suggested_command empty or suggest a related command that helps them explore.\n")
	}
	b.WriteString("Use plain text only. No markdown.")

	return b.String()
}

// mayReveal reports whether the learner has missed often enough to be given
// the answer.
func mayReveal(in Input, cfg Config) bool {
	return cfg.RevealAfter > 0 && len(in.Previous)+1 >= cfg.RevealAfter
}
