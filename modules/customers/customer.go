package customers

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nordcrm/nordcrm/core"
)

// Customer is a CRM contact stored in the owning tenant's database.
// Documents never carry a tenant field: isolation comes from which
// database the collection lives in, not from per-row filtering.
type Customer struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CustomerInput is the create/update payload.
type CustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

// Validate normalizes the input in place and collects per-field problems.
func (in *CustomerInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)

	verr := core.NewValidationError()
	if in.Name == "" {
		verr.Add("name", "is required")
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		verr.Add("email", "is not a valid email address")
	}
	if verr.IsEmpty() {
		return nil
	}
	return verr
}

func newCustomer(in CustomerInput) *Customer {
	now := time.Now().UTC()
	return &Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
