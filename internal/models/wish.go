package models

const (
	StatusPending   = "pending"
	StatusFulfilled = "fulfilled"
	StatusArchived  = "archived"
)

type Wish struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Status      string  `json:"status,omitempty"`
	Fulfilled   bool    `json:"fulfilled"`
	FulfilledBy *string `json:"fulfilledBy"`
	CreatedAt   int64   `json:"createdAt"`
}

// IsFulfilled reads both the status field and the legacy boolean: older
// records may carry only one of the two.
func (w *Wish) IsFulfilled() bool {
	if w.Fulfilled {
		return true
	}
	return w.Status != "" && w.Status != StatusPending
}

// MarkFulfilled performs the terminal transition. The boolean is derived
// from the status here and nowhere else, so the two cannot diverge.
func (w *Wish) MarkFulfilled(name string) {
	w.Status = StatusFulfilled
	w.Fulfilled = true
	w.FulfilledBy = &name
}
