package actors

import "time"

const (
	RoleAdministrator = "ADMINISTRATOR"
	RoleTrainer       = "TRAINER"
	RoleCustomer      = "CUSTOMER"
	RoleNutritionist  = "NUTRITIONIST"
	RoleAuditor       = "AUDITOR"
)

// Actor is any participant with an account. The role column decides which
// projection (Customer, Trainer, ...) the row can be viewed as.
type Actor struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	MiddleName  string `json:"middle_name,omitempty"`
	Surname     string `gorm:"not null" json:"surname"`
	Email       string `gorm:"not null;uniqueIndex:idx_actors_email" json:"email"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Address     string `json:"address,omitempty"`
	Photo       string `json:"photo,omitempty"`
	Role        string `gorm:"type:varchar(20);not null;index" json:"role"`
	IsBanned    bool   `gorm:"not null;default:false" json:"is_banned"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_actors_stripe_customer_id" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a Actor) FullName() string {
	if a.MiddleName == "" {
		return a.Name + " " + a.Surname
	}
	return a.Name + " " + a.MiddleName + " " + a.Surname
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdministrator, RoleTrainer, RoleCustomer, RoleNutritionist, RoleAuditor:
		return true
	default:
		return false
	}
}
