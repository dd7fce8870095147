// Package identity manages the signed-in learner and mirrors their
// progress into a per-identity snapshot.
package identity

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is the signed-in learner.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LoginTime time.Time `json:"loginTime"`
}

// DefaultName is used when no display name is given.
const DefaultName = "User"

// ErrInvalidEmail is returned by ValidateEmail.
var ErrInvalidEmail = errors.New("invalid email address")

// ValidateEmail accepts a bare address such as "ada@example.com". Display
// names and angle brackets are rejected.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if _, domain, _ := strings.Cut(email, "@"); !strings.Contains(domain, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

// New builds an identity for email. The ID is stable for a given address
// (case-insensitive), so the same learner finds their snapshot again.
func New(email, name string, now time.Time) Identity {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(email)))
	return Identity{ID: id.String(), Email: email, Name: name, LoginTime: now.UTC()}
}

// examData mirrors the exam and badge keys. Absent keys are null.
type examData struct {
	Score           *string `json:"score"`
	Completed       *string `json:"completed"`
	HasBadge        *string `json:"hasBadge"`
	BadgeHolderName *string `json:"badgeHolderName"`
	BadgeIssuedAt   *string `json:"badgeIssuedAt,omitempty"`
	BadgeCertID     *string `json:"badgeCertId,omitempty"`
}

// snapshot is the archived progress for one identity. Values are kept in
// their stored string form.
type snapshot struct {
	Points          string   `json:"points"`
	CompletedLevels string   `json:"completedLevels"`
	ExamData        examData `json:"examData"`
}

func decodeSnapshot(raw string) (snapshot, error) {
	var s snapshot
	err := json.Unmarshal([]byte(raw), &s)
	return s, err
}
