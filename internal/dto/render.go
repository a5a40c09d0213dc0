package dto

import (
	"deptsite/internal/models"
)

// isoDate is the layout for the addedAt string on article pages.
const isoDate = "2006-01-02"

// UserRender is the profile shape handed to HTML templates. Every optional
// field carries either the stored value or its placeholder.
type UserRender struct {
	FirstName     string
	LastName      string
	Designation   string
	Description   string
	Address       string
	ContactNumber string
	Website       string
	ImageURL      string
	Mails         string
}

// RenderUser applies the default-value resolver to every optional profile
// field. The stored entity is left untouched.
func RenderUser(u models.User) UserRender {
	return UserRender{
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Designation:   orDefault(u.Designation, "Designation", kindUser),
		Description:   orDefault(u.Description, "Description", kindUser),
		Address:       orDefault(u.Address, "Address", kindUser),
		ContactNumber: orDefault(u.ContactNumber, "Contact Number", kindUser),
		Website:       orDefault(u.Website, "Website", kindUser),
		ImageURL:      orImageDefault(u.ImageURL),
		Mails:         orDefault(u.Mails, "EMails", kindUser),
	}
}

// RenderUsers maps a listing of users to render DTOs, keeping order.
func RenderUsers(users []models.User) []UserRender {
	out := make([]UserRender, len(users))
	for i, u := range users {
		out[i] = RenderUser(u)
	}
	return out
}

// AuthorRender is the author block on a publication listing row.
type AuthorRender struct {
	FirstName string
	LastName  string
	Username  string
}

// PublicationRender is one row of a publications listing. Index is 1-based
// within the current listing context.
type PublicationRender struct {
	Index   int
	Title   string
	Journal string
	URL     string
	Author  AuthorRender
}

// RenderPublication builds a listing row. A publication without an author
// renders the fixed "null" author placeholder.
func RenderPublication(p models.Publication, index int) PublicationRender {
	author := AuthorRender{FirstName: "null", LastName: "null", Username: "null"}
	if p.Author != nil {
		author = AuthorRender{
			FirstName: p.Author.FirstName,
			LastName:  p.Author.LastName,
			Username:  p.Author.Username,
		}
	}
	return PublicationRender{
		Index:   index,
		Title:   p.Title,
		Journal: orDefault(p.Journal, "Journal", kindPublication),
		URL:     orDefault(p.URL, "URL", kindPublication),
		Author:  author,
	}
}

// RenderPublications assigns 1-based display indexes in listing order.
func RenderPublications(pubs []models.Publication) []PublicationRender {
	out := make([]PublicationRender, len(pubs))
	for i, p := range pubs {
		out[i] = RenderPublication(p, i+1)
	}
	return out
}

// ArticleRender is the shape handed to the article template.
type ArticleRender struct {
	Slug     string
	Title    string
	Headline string
	Content  string
	Author   models.User
	AddedAt  string
}

// RenderArticle formats the creation timestamp as an ISO date.
func RenderArticle(a models.Article) ArticleRender {
	return ArticleRender{
		Slug:     a.Slug,
		Title:    a.Title,
		Headline: a.Headline,
		Content:  a.Content,
		Author:   a.Author,
		AddedAt:  a.AddedAt.Format(isoDate),
	}
}
