package dto

import "time"

// UpdateProfileRequest - частичное обновление: nil = не менять, значение = установить
type UpdateProfileRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=50"`
	Bio   *string `json:"bio" validate:"omitempty,max=2000"`
	Photo *string `json:"photo"`
	Role  *string `json:"role" validate:"omitempty,is-user-role"`
}

// IsEmpty - ни одно поле не передано
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.Phone == nil && r.Bio == nil && r.Photo == nil && r.Role == nil
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Photo     string    `json:"photo"`
	Bio       string    `json:"bio"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
