package seed

import (
	"fmt"
	"strings"

	"deptsite/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory generates randomized demo data on top of the baseline dataset.
type Factory struct {
	db   *gorm.DB
	fake *gofakeit.Faker
}

func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db, fake: gofakeit.New(0)}
}

// User creates and persists a user with the given designation.
func (f *Factory) User(designation string) (*models.User, error) {
	first := f.fake.FirstName()
	last := f.fake.LastName()
	user := models.User{
		Username:      strings.ToLower(first + "_" + last),
		FirstName:     first,
		LastName:      last,
		Designation:   &designation,
		Description:   strPtr(f.fake.Sentence(12)),
		Address:       strPtr(f.fake.Address().Address),
		ContactNumber: strPtr(f.fake.Phone()),
		Website:       strPtr(f.fake.URL()),
		Mails:         strPtr(f.fake.Email()),
	}
	if err := f.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Article creates and persists an article authored by the given user.
func (f *Factory) Article(author models.User) (*models.Article, error) {
	title := f.fake.Sentence(4)
	article := models.NewArticle(title, f.fake.Sentence(8), f.fake.Paragraph(3, 4, 10, " "), author)
	if err := f.db.Omit("Author").Create(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

// Publication creates and persists a publication attributed to the given user.
func (f *Factory) Publication(author models.User) (*models.Publication, error) {
	pub := models.Publication{
		Title:    f.fake.Sentence(5),
		Journal:  strPtr(f.fake.Company()),
		URL:      strPtr(f.fake.URL()),
		AuthorID: &author.ID,
	}
	if err := f.db.Create(&pub).Error; err != nil {
		return nil, err
	}
	return &pub, nil
}

// Demo populates the database with a randomized population of faculty and
// researchers, each with a handful of articles and publications.
func (f *Factory) Demo(facultyCount, researcherCount int) error {
	for i := 0; i < facultyCount; i++ {
		user, err := f.User(models.DesignationFaculty)
		if err != nil {
			return err
		}
		for j := 0; j < f.fake.Number(1, 3); j++ {
			if _, err := f.Article(*user); err != nil {
				// Random titles can collide on slug; skip duplicates.
				if !isDuplicate(err) {
					return err
				}
			}
		}
		for j := 0; j < f.fake.Number(1, 4); j++ {
			if _, err := f.Publication(*user); err != nil {
				return err
			}
		}
	}
	for i := 0; i < researcherCount; i++ {
		if _, err := f.User(models.DesignationResearcher); err != nil {
			return err
		}
	}
	return nil
}

func isDuplicate(err error) bool {
	msg := strings.ToLower(fmt.Sprint(err))
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
