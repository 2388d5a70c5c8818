package converter

import (
	"go-hospital-resource-management/internal/delivery/dto"
	"go-hospital-resource-management/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
	}
}
