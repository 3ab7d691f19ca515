package models

// Comment is append-only: there is no edit or delete.
type Comment struct {
	ID        string `json:"id"`
	WishID    string `json:"wishId"`
	User      string `json:"user"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}
