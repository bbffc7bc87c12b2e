package domain

// Author of one or more catalog books. An author cannot be deleted while
// any book still references it.
type Author struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" validate:"notblank"`
	Biography string `json:"biography"`
}
