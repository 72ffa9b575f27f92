package response

import "product-reviews/internal/usecase/commands"

type LoginResponse struct {
	Token    string `json:"token"`
	SellerID string `json:"seller_id"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:    r.Token,
		SellerID: r.SellerID.String(),
	}
}
