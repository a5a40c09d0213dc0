// Package seed provides helpers to create baseline and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"deptsite/internal/models"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// Baseline inserts the canonical starter dataset: one faculty member with two
// articles and a publication, and one researcher. It is idempotent per
// username; an existing johnDoe short-circuits the whole load.
func Baseline(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&models.User{}).Where("username = ?", "johnDoe").Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	johnDoe := models.User{
		Username:    "johnDoe",
		FirstName:   "Dr. John",
		LastName:    "Doe",
		Designation: strPtr(models.DesignationFaculty),
	}
	if err := db.Create(&johnDoe).Error; err != nil {
		return err
	}

	articles := []*models.Article{
		models.NewArticle("Why", "Nuts", "Deez Nuts are good", johnDoe),
		models.NewArticle("Nuts", "Gay", "Every nut is a good nut", johnDoe),
	}
	for _, a := range articles {
		if err := db.Omit("Author").Create(a).Error; err != nil {
			return err
		}
	}

	pub := models.Publication{
		Title:    "Lol",
		Journal:  strPtr("Nuts"),
		AuthorID: &johnDoe.ID,
	}
	if err := db.Create(&pub).Error; err != nil {
		return err
	}

	researcher := models.User{
		Username:    "bagesh_kumar",
		FirstName:   "Bagesh",
		LastName:    "Kumar",
		Designation: strPtr(models.DesignationResearcher),
		Description: strPtr("Integrated MTech + PhD @ IIIT Allahabad. Works in ML and NLP."),
		Address:     strPtr("CC3, IIIT Allahabad"),
		ImageURL:    strPtr("https://serl.iiita.ac.in/Profile/bagesh.jpg"),
	}
	return db.Create(&researcher).Error
}
