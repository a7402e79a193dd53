package actors

import "personal-trainer-app/internal/apperr"

// Customer is an Actor known to hold the customer role.
type Customer struct {
	Actor
}

// Trainer is an Actor known to hold the trainer role.
type Trainer struct {
	Actor
}

// Nutritionist is an Actor known to hold the nutritionist role.
type Nutritionist struct {
	Actor
}

// Administrator is an Actor known to hold the administrator role.
type Administrator struct {
	Actor
}

func (a Actor) AsCustomer() (Customer, error) {
	if err := a.requireRole(RoleCustomer); err != nil {
		return Customer{}, err
	}
	return Customer{Actor: a}, nil
}

func (a Actor) AsTrainer() (Trainer, error) {
	if err := a.requireRole(RoleTrainer); err != nil {
		return Trainer{}, err
	}
	return Trainer{Actor: a}, nil
}

func (a Actor) AsNutritionist() (Nutritionist, error) {
	if err := a.requireRole(RoleNutritionist); err != nil {
		return Nutritionist{}, err
	}
	return Nutritionist{Actor: a}, nil
}

func (a Actor) AsAdministrator() (Administrator, error) {
	if err := a.requireRole(RoleAdministrator); err != nil {
		return Administrator{}, err
	}
	return Administrator{Actor: a}, nil
}

func (a Actor) requireRole(role string) error {
	if a.ID == 0 {
		return apperr.Authorization(apperr.ReasonWrongRole, "no authenticated actor")
	}
	if a.IsBanned {
		return apperr.Authorization(apperr.ReasonWrongRole, "actor is banned")
	}
	if a.Role != role {
		return apperr.Authorization(apperr.ReasonWrongRole, "actor is not a "+role)
	}
	return nil
}
