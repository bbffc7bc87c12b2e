package domain

// Book is a catalog entry. Stock is the number of copies currently
// available for sale; orders snapshot Title and Price at checkout time,
// so deleting or mutating a Book never rewrites order history.
type Book struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title" validate:"notblank"`
	AuthorID        int64   `json:"authorId"`
	ISBN            string  `json:"isbn" validate:"notblank"`
	PublicationYear int     `json:"publicationYear"`
	Price           float64 `json:"price" validate:"gt=0"`
	Stock           int     `json:"stock" validate:"gte=0"`
}
