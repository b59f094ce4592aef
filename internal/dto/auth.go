package dto

import "github.com/yukikurage/todolist-api/internal/services"

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse is returned for both outcomes of a login; Success tells
// them apart.
type LoginResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	IDToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    int32  `json:"expiresIn,omitempty"`
}

type RegisterRequest struct {
	Password   string `json:"password" binding:"required,min=8"`
	Name       string `json:"name" binding:"required"`
	Identifier string `json:"identifier" binding:"required"`
	Contact    string `json:"contact" binding:"required"`
}

type RegisterResponse struct {
	Message    string `json:"message"`
	Identifier string `json:"identifier"`
}

type ConfirmRequest struct {
	Identifier       string `json:"identifier" binding:"required"`
	ConfirmationCode string `json:"confirmationCode" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	IDToken     string `json:"idToken"`
	ExpiresIn   int32  `json:"expiresIn"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProfileResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Contact  string `json:"contact"`
	Subject  string `json:"subject"`
}

// ToLoginResponse converts a successful AuthResult
func ToLoginResponse(result *services.AuthResult) LoginResponse {
	return LoginResponse{
		Success:      true,
		AccessToken:  result.AccessToken,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	}
}

func ToRefreshResponse(result *services.AuthResult) RefreshResponse {
	return RefreshResponse{
		AccessToken: result.AccessToken,
		IDToken:     result.IDToken,
		ExpiresIn:   result.ExpiresIn,
	}
}

func ToProfileResponse(info *services.UserInfo) ProfileResponse {
	return ProfileResponse{
		Username: info.Username,
		Name:     info.Name,
		Contact:  info.Contact,
		Subject:  info.Subject,
	}
}
