package store

// Active progress keys.
const (
	KeyUserPoints      = "userPoints"
	KeyCompletedLevels = "completedLevels"
	KeyExamScore       = "examScore"
	KeyExamCompleted   = "examCompleted"
	KeyHasBadge        = "hasLinuxDragonBadge"
	KeyBadgeHolderName = "badgeHolderName"
	KeyBadgeIssuedAt   = "badgeIssuedAt"
	KeyBadgeCertID     = "badgeCertId"
)

// Session keys.
const (
	KeyCurrentUser = "currentUser"
	KeyIsLoggedIn  = "isLoggedIn"
)

// True is the stored form of a set boolean flag. Cleared flags are removed.
const True = "true"

// ActiveProgressKeys lists the keys cleared when a session ends.
func ActiveProgressKeys() []string {
	return []string{
		KeyUserPoints,
		KeyCompletedLevels,
		KeyExamScore,
		KeyExamCompleted,
		KeyHasBadge,
		KeyBadgeHolderName,
		KeyBadgeIssuedAt,
		KeyBadgeCertID,
	}
}

// SnapshotKey is the per-identity archive key.
func SnapshotKey(identityID string) string {
	return "user_" + identityID
}
