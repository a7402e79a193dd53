package applicationsapi

import (
	"time"

	"personal-trainer-app/internal/domain/applications"
)

// SubmitRequest is the application form returned by the create endpoint, sent
// back by the customer with its final comments and card.
type SubmitRequest struct {
	WorkingOutID uint   `json:"working_out_id" binding:"required"`
	CreditCardID uint   `json:"credit_card_id" binding:"required"`
	Comments     string `json:"comments"`
}

type ApplicationDTO struct {
	ID               uint       `json:"id,omitempty"`
	Status           string     `json:"status"`
	RegisteredMoment *time.Time `json:"registered_moment,omitempty"`
	Comments         string     `json:"comments,omitempty"`
	CustomerID       uint       `json:"customer_id"`
	CreditCardID     uint       `json:"credit_card_id"`
	WorkingOutID     uint       `json:"working_out_id"`
}

func toDTO(a applications.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:               a.ID,
		Status:           a.Status.String(),
		RegisteredMoment: a.RegisteredMoment,
		Comments:         a.Comments,
		CustomerID:       a.CustomerID,
		CreditCardID:     a.CreditCardID,
		WorkingOutID:     a.WorkingOutID,
	}
}

func toDTOs(list []applications.Application) []ApplicationDTO {
	out := make([]ApplicationDTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	return out
}
