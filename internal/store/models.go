package store

import "time"

// User is one registered owner. The username doubles as the public URL
// segment (folio.example/p/<username>).
type User struct {
	ID           string
	Name         string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Inquiry is a visitor message routed to exactly one owner. Immutable after
// creation except for owner-initiated deletion.
type Inquiry struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"ownerId"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Country        string    `json:"country"`
	Category       string    `json:"category"`
	ProductName    string    `json:"productName"`
	ProductDetails string    `json:"productDetails"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}
