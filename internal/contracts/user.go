package contracts

import (
	domainUser "github.com/baccarifarah/spendLog/internal/domain/user"
)

type UserUpdateRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FullName  *string `json:"full_name" binding:"omitempty,max=255"`
	AvatarUrl *string `json:"avatar_url" binding:"omitempty,max=512"`
}

type UserResponse struct {
	User *domainUser.User `json:"user"`
}
