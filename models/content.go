package models

// ContentPage is one page of a book's text, keyed by (bookId, pageNumber).
// Pages are replaced wholesale on every content-bearing save of the book.
type ContentPage struct {
	BookID     string `bson:"bookId" json:"bookId"`
	PageNumber int    `bson:"pageNumber" json:"pageNumber"`
	Text       string `bson:"text" json:"text"`
}

// EmptyPagePlaceholder is stored in place of a page whose trimmed text is
// empty, so pageCount always matches the submitted page count.
const EmptyPagePlaceholder = " "
