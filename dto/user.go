package dto

import (
	"time"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/model"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of a user. The password hash never leaves
// the server.
type UserResponse struct {
	ID        string    `json:"_id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdOn"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
