package models

// UserVote is a single user's vote on a review. Absence of a row means the
// user has no vote on that review.
type UserVote struct {
	VoteID   string   `gorm:"column:vote_id;type:uuid;default:gen_random_uuid();primaryKey" json:"vote_id"`
	UserID   string   `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_user_review" json:"user_id"`
	ReviewID string   `gorm:"column:review_id;type:uuid;not null;uniqueIndex:idx_user_review" json:"review_id"`
	Vote     VoteType `gorm:"column:vote;not null" json:"vote"`
}

func (UserVote) TableName() string { return "user_votes" }

// VoteAction is what the vote transaction must do to the user_votes row.
type VoteAction int

const (
	VoteInsert VoteAction = iota // no existing row: insert requested vote
	VoteRemove                   // same direction again: remove the row
	VoteSwitch                   // opposite direction: flip the row
)

// VoteTransition computes the row action and tally delta for a vote request.
// existing is the user's current vote, or "" when no row exists.
func VoteTransition(existing VoteType, requested VoteType) (VoteAction, int) {
	delta := 1
	if requested == VoteDown {
		delta = -1
	}

	switch existing {
	case "":
		return VoteInsert, delta
	case requested:
		// Re-clicking the same arrow reverses the original contribution.
		return VoteRemove, -delta
	default:
		// Switching direction removes the old contribution and adds the new.
		return VoteSwitch, 2 * delta
	}
}
