// Package exam runs the final Linux exam that gates the Dragon Master badge.
package exam

import (
	"math"
	"strings"
)

// Question is one exam item. The concrete types are MultipleChoice and
// Command.
type Question interface {
	ID() int
	Prompt() string
	Points() int
	// Solution is the canonical correct answer.
	Solution() string
	// Grade reports whether answer is correct.
	Grade(answer string) bool

	question()
}

// Base holds the fields shared by every question kind.
type Base struct {
	Number int
	Text   string
	Weight int
}

func (b Base) ID() int        { return b.Number }
func (b Base) Prompt() string { return b.Text }
func (b Base) Points() int    { return b.Weight }
func (Base) question()        {}

// MultipleChoice is answered by picking one of Options.
type MultipleChoice struct {
	Base
	Options []string
	Answer  string
}

func (q MultipleChoice) Solution() string { return q.Answer }

// Grade requires the exact option text.
func (q MultipleChoice) Grade(answer string) bool {
	return answer == q.Answer
}

// Command is answered by typing a command line.
type Command struct {
	Base
	Answer string
}

func (q Command) Solution() string { return q.Answer }

// Grade is case-insensitive and lenient: either trimmed string may contain
// the other. The empty string is excluded from that containment rule, so a
// blank answer is always wrong even though every string contains "".
func (q Command) Grade(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	want := strings.ToLower(strings.TrimSpace(q.Answer))
	if a == "" {
		return false
	}
	return a == want || strings.Contains(a, want) || strings.Contains(want, a)
}

// Grade reports whether answer is correct for q.
func Grade(q Question, answer string) bool {
	return q.Grade(answer)
}

var questions = []Question{
	MultipleChoice{
		Base:    Base{1, "Which command is used to display the current directory?", 5},
		Options: []string{"ls", "pwd", "cd", "dir"},
		Answer:  "pwd",
	},
	Command{
		Base:   Base{2, "Write the command to list all files including hidden ones with detailed information", 8},
		Answer: "ls -la",
	},
	MultipleChoice{
		Base:    Base{3, "What does chmod +x do to a file?", 6},
		Options: []string{"Removes all permissions", "Makes it executable", "Makes it readable", "Deletes the file"},
		Answer:  "Makes it executable",
	},
	Command{
		Base:   Base{4, `Write the command to create a directory named "test_folder"`, 7},
		Answer: "mkdir test_folder",
	},
	MultipleChoice{
		Base:    Base{5, "Which command is used to search for text patterns in files?", 5},
		Options: []string{"find", "locate", "grep", "search"},
		Answer:  "grep",
	},
	Command{
		Base:   Base{6, `Write the command to copy "file1.txt" to "file2.txt"`, 7},
		Answer: "cp file1.txt file2.txt",
	},
	MultipleChoice{
		Base:    Base{7, `What does the "ps aux" command show?`, 6},
		Options: []string{"Disk usage", "All running processes", "Network connections", "File permissions"},
		Answer:  "All running processes",
	},
	Command{
		Base:   Base{8, `Write the command to remove a file named "oldfile.txt"`, 6},
		Answer: "rm oldfile.txt",
	},
	MultipleChoice{
		Base:    Base{9, "Which command shows disk space usage?", 5},
		Options: []string{"du", "df", "free", "space"},
		Answer:  "df",
	},
	Command{
		Base:   Base{10, `Write the command to display the contents of a file called "readme.txt"`, 7},
		Answer: "cat readme.txt",
	},
	MultipleChoice{
		Base:    Base{11, `What does the "cd .." command do?`, 5},
		Options: []string{"Goes to home directory", "Goes up one directory level", "Lists directories", "Creates a directory"},
		Answer:  "Goes up one directory level",
	},
	Command{
		Base:   Base{12, "Write the command to find all .txt files in the current directory", 9},
		Answer: `find . -name "*.txt"`,
	},
	MultipleChoice{
		Base:    Base{13, "Which command is used to compress files into a tar.gz archive?", 7},
		Options: []string{"zip", "gzip", "tar -czf", "compress"},
		Answer:  "tar -czf",
	},
	Command{
		Base:   Base{14, "Write the command to check memory usage in human-readable format", 8},
		Answer: "free -h",
	},
	MultipleChoice{
		Base:    Base{15, `What does the "tail -f" command do?`, 6},
		Options: []string{"Shows first 10 lines", "Shows last 10 lines and follows new content", "Deletes last lines", "Copies file tail"},
		Answer:  "Shows last 10 lines and follows new content",
	},
}

// Questions returns the fixed question set in order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// MaxPoints is the sum of every question's weight.
func MaxPoints() int {
	total := 0
	for _, q := range questions {
		total += q.Points()
	}
	return total
}

// Score returns the rounded percentage of points earned by answers,
// keyed by question ID.
func Score(answers map[int]string) int {
	got := 0
	for _, q := range questions {
		if a, ok := answers[q.ID()]; ok && q.Grade(a) {
			got += q.Points()
		}
	}
	return int(math.Round(float64(got) * 100 / float64(MaxPoints())))
}
