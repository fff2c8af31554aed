package profile

// UpdateProfileRequest carries the fields a user may change on their own
// profile. Nil pointers mean "leave as is".
type UpdateProfileRequest struct {
	Username  *string   `json:"username" binding:"omitempty,min=3,max=32"`
	Bio       *string   `json:"bio" binding:"omitempty,max=2000"`
	AvatarURL *string   `json:"avatar_url" binding:"omitempty,url,max=500"`
	Skills    *[]string `json:"skills" binding:"omitempty,max=20,dive,max=40"`
}
