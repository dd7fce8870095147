package levels

import (
	"fmt"
	"strings"
)

// validateLevels performs structural checks on the catalogue.
// Returns a combined error describing all problems found, or nil if valid.
func validateLevels(ls []Level) error {
	var errs []string

	for i, l := range ls {
		if l.ID != i+1 {
			errs = append(errs, fmt.Sprintf("level at index %d has ID %d, want %d", i, l.ID, i+1))
		}
		if l.Title == "" {
			errs = append(errs, fmt.Sprintf("level %d has no title", l.ID))
		}
		if l.Points <= 0 {
			errs = append(errs, fmt.Sprintf("level %d: points must be > 0, got %d", l.ID, l.Points))
		}
		if len(l.Exercises) == 0 {
			errs = append(errs, fmt.Sprintf("level %d has no exercises", l.ID))
		}
		for j, ex := range l.Exercises {
			if strings.TrimSpace(ex.ExpectedCommand) == "" {
				errs = append(errs, fmt.Sprintf("level %d exercise %d has no expected command", l.ID, j))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("level catalogue validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
