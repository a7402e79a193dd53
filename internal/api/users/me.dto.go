package users

type MeResponse struct {
	User         UserDTO  `json:"user"`
	Capabilities []string `json:"capabilities"`
}

type UserDTO struct {
	ID          uint    `json:"id"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	MiddleName  *string `json:"middle_name"`
	Surname     string  `json:"surname"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	Photo       *string `json:"photo"`
	Role        string  `json:"role"`
}
