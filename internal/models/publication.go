package models

// Publication is a published paper attributed to at most one User. The author
// reference is optional; legacy rows imported without an author keep a NULL
// back-reference.
type Publication struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Title    string  `gorm:"not null" json:"title"`
	AuthorID *uint   `gorm:"index" json:"authorId"`
	Author   *User   `gorm:"foreignKey:AuthorID" json:"-"`
	Journal  *string `json:"journal"`
	URL      *string `json:"url"`
}
