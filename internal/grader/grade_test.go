package grader

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		submitted string
		expected  string
		want      bool
	}{
		{"ls -la", "ls -la", true},
		{"LS -LA", "ls -la", true},
		{"ls -la extra", "ls -la", true},
		{"ls", "ls -la", false},
		{"", "ls", false},
		{"   ", "ls", false},
		{"ps aux", "ps aux | grep bash", true},
		{"ps", "ps aux | grep bash", false},
		{"cat notes.md", "cat notes.md", true},
		{"  pwd  ", "pwd", true},
		{"echo $home", "echo $HOME", true},
	}
	for _, tt := range tests {
		t.Run(tt.submitted+"/"+tt.expected, func(t *testing.T) {
			if got := Grade(tt.submitted, tt.expected); got != tt.want {
				t.Errorf("Grade(%q, %q) = %v, want %v", tt.submitted, tt.expected, got, tt.want)
			}
		})
	}
}

func TestGrade_Reflexive(t *testing.T) {
	for _, x := range []string{"pwd", "ls -l", "Tar -czf a.tgz b/", "for i in {1..3}; do echo $i; done"} {
		if !Grade(x, x) {
			t.Errorf("Grade(%q, %q) = false", x, x)
		}
	}
}
