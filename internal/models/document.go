package models

// Document is the single unit of persistence: all collections live in one
// file and are loaded and saved together.
type Document struct {
	Wishes   []Wish    `json:"wishes"`
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
}
