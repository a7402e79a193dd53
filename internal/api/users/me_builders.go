package users

import "personal-trainer-app/internal/domain/actors"

func BuildUserDTO(a actors.Actor) UserDTO {
	return UserDTO{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		MiddleName:  stringPtrIfNotEmpty(a.MiddleName),
		Surname:     a.Surname,
		PhoneNumber: stringPtrIfNotEmpty(a.PhoneNumber),
		Address:     stringPtrIfNotEmpty(a.Address),
		Photo:       stringPtrIfNotEmpty(a.Photo),
		Role:        a.Role,
	}
}

// BuildCapabilities lists what the front-end may offer the actor.
func BuildCapabilities(role string) []string {
	caps := []string{"messages.read", "messages.send"}
	switch role {
	case actors.RoleCustomer:
		caps = append(caps, "applications.submit", "credit_cards.manage", "account.delete")
	case actors.RoleTrainer:
		caps = append(caps, "applications.review", "account.delete")
	case actors.RoleNutritionist:
		caps = append(caps, "articles.write", "account.delete")
	case actors.RoleAdministrator:
		caps = append(caps, "messages.broadcast", "messages.breach")
	}
	return caps
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
