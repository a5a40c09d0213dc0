// Package models contains data structures for the application's domain models.
package models

// User is a member of the department: faculty or researcher.
//
// Optional profile fields are pointers so that an absent value survives the
// round trip through the store as NULL and is emitted as null on the JSON
// surface. Placeholder text for absent fields is applied only when building
// HTML render DTOs, never here.
type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Username      string        `gorm:"unique;not null" json:"username"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Designation   *string       `json:"designation"`
	Description   *string       `json:"description"`
	Address       *string       `json:"address"`
	ContactNumber *string       `json:"contactNumber"`
	Website       *string       `json:"website"`
	ImageURL      *string       `json:"imageUrl"`
	Mails         *string       `json:"mails"`
	Publications  []Publication `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"publications"`
}

// Designation values produced by the current write paths. The store does not
// enforce the enumeration; listings filter on exact match.
const (
	DesignationFaculty    = "faculty"
	DesignationResearcher = "researcher"
)
