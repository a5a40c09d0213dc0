package dto

import "deptsite/internal/models"

// UserCreateRequest is the form payload for POST /api/user/. Optional fields
// are pointers so an omitted form field stays NULL in the store rather than
// becoming an empty string.
type UserCreateRequest struct {
	Username      string  `form:"username"`
	FirstName     string  `form:"firstName"`
	LastName      string  `form:"lastName"`
	Designation   string  `form:"designation"`
	Publications  []uint  `form:"publications"`
	Address       *string `form:"address"`
	Description   *string `form:"description"`
	ContactNumber *string `form:"contactNumber"`
	Website       *string `form:"website"`
	ImageURL      *string `form:"imageUrl"`
	Mails         *string `form:"mails"`
}

// Validate checks the required fields. Designation enumeration is enforced by
// the service, not here.
func (r *UserCreateRequest) Validate() error {
	if r.Username == "" {
		return models.NewValidationError("username is required")
	}
	if r.FirstName == "" || r.LastName == "" {
		return models.NewValidationError("firstName and lastName are required")
	}
	return nil
}

// ToUser assembles a new User entity with its resolved owned publications.
// Publication identifiers are resolved by the caller; identifiers that did
// not resolve have already been dropped from pubs.
func (r *UserCreateRequest) ToUser(pubs []models.Publication) models.User {
	designation := r.Designation
	return models.User{
		Username:      r.Username,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Designation:   &designation,
		Description:   r.Description,
		Publications:  pubs,
		Address:       r.Address,
		ContactNumber: r.ContactNumber,
		Website:       r.Website,
		ImageURL:      r.ImageURL,
		Mails:         r.Mails,
	}
}

// PublicationCreateRequest is the form payload for POST /api/publications/.
type PublicationCreateRequest struct {
	Title          string  `form:"title"`
	AuthorUsername string  `form:"authorUsername"`
	Journal        *string `form:"journal"`
	URL            *string `form:"url"`
}

func (r *PublicationCreateRequest) Validate() error {
	if r.Title == "" {
		return models.NewValidationError("title is required")
	}
	if r.AuthorUsername == "" {
		return models.NewValidationError("authorUsername is required")
	}
	return nil
}

// ToPublication assembles a new Publication owned by the resolved author.
func (r *PublicationCreateRequest) ToPublication(author *models.User) models.Publication {
	p := models.Publication{
		Title:   r.Title,
		Journal: r.Journal,
		URL:     r.URL,
	}
	if author != nil {
		p.AuthorID = &author.ID
		p.Author = author
	}
	return p
}

// SubscriptionCreateRequest is the form payload for POST /api/subscriptions/.
type SubscriptionCreateRequest struct {
	Mail *string `form:"mail"`
}

func (r *SubscriptionCreateRequest) ToSubscription() models.Subscription {
	return models.Subscription{Mail: r.Mail}
}

// FeedbackCreateRequest is the form payload for POST /api/feedback/.
type FeedbackCreateRequest struct {
	Name     *string `form:"name"`
	Feedback *string `form:"feedback"`
}

func (r *FeedbackCreateRequest) ToFeedback() models.Feedback {
	return models.Feedback{Name: r.Name, Feedback: r.Feedback}
}

// AdminLoginRequest is the form payload for POST /api/user/login.
type AdminLoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
