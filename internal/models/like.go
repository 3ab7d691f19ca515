package models

// Like marks that a user currently likes a wish. Presence of the row is the
// state; unliking removes the row rather than flipping a flag, so at most one
// row exists per (WishID, User) pair.
type Like struct {
	ID        string `json:"id"`
	WishID    string `json:"wishId"`
	User      string `json:"user"`
	CreatedAt int64  `json:"createdAt"`
}
