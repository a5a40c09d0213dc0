package models

// Faculty is a legacy standalone record, unrelated to User. No handler
// mutates it; it is migrated and retained for completeness.
type Faculty struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `json:"name"`
	Designation   string `json:"designation"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	Website       string `json:"website"`
	Mails         string `json:"mails"`
}

// Resource is a legacy standalone record listing departmental material.
type Resource struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"imageUrl"`
	PurchaseURL string `json:"purchaseUrl"`
}

// Subscription is a mailing-list signup.
type Subscription struct {
	ID   uint    `gorm:"primaryKey" json:"id"`
	Mail *string `json:"mail"`
}

// Feedback is a free-text submission from the contact page.
type Feedback struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     *string `json:"name"`
	Feedback *string `json:"feedback"`
}
