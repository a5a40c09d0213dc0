package dto

import "deptsite/internal/models"

// UserWire is the JSON shape for user listings that do not expose the full
// entity. It deliberately omits description and publications; absent optional
// fields are emitted as null, never as placeholder text.
type UserWire struct {
	Username      string  `json:"username"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Designation   *string `json:"designation"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contactNumber"`
	Website       *string `json:"website"`
	ImageURL      *string `json:"imageUrl"`
	Mails         *string `json:"mails"`
	ID            uint    `json:"id"`
}

// WireUser is a direct field-by-field passthrough.
func WireUser(u models.User) UserWire {
	return UserWire{
		Username:      u.Username,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Designation:   u.Designation,
		Address:       u.Address,
		ContactNumber: u.ContactNumber,
		Website:       u.Website,
		ImageURL:      u.ImageURL,
		Mails:         u.Mails,
		ID:            u.ID,
	}
}

// WireUsers maps a listing, keeping order.
func WireUsers(users []models.User) []UserWire {
	out := make([]UserWire, len(users))
	for i, u := range users {
		out[i] = WireUser(u)
	}
	return out
}

// PublicationWire is the JSON shape for publication listings. The author is
// flattened to its identifier.
type PublicationWire struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	AuthorID *uint   `json:"authorId"`
	Journal  *string `json:"journal"`
	URL      *string `json:"url"`
}

// WirePublication is a direct field-by-field passthrough.
func WirePublication(p models.Publication) PublicationWire {
	return PublicationWire{
		ID:       p.ID,
		Title:    p.Title,
		AuthorID: p.AuthorID,
		Journal:  p.Journal,
		URL:      p.URL,
	}
}

// WirePublications maps a listing, keeping order.
func WirePublications(pubs []models.Publication) []PublicationWire {
	out := make([]PublicationWire, len(pubs))
	for i, p := range pubs {
		out[i] = WirePublication(p)
	}
	return out
}
