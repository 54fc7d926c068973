package response

import "github.com/innovatec/registration-api/internal/domain"

type LoginResponse struct {
	Token string           `json:"token"`
	Admin domain.AdminUser `json:"admin"`
}
