package auth

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"` // tourist (default) or guide
	City     string `json:"city"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ProviderLoginRequest struct {
	Provider string `json:"provider" binding:"required"` // google or facebook
}

type DemoLoginRequest struct {
	Role string `json:"role" binding:"required"` // tourist, guide or admin
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	FullName  string `json:"full_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	City      string `json:"city,omitempty"`
	CreatedAt string `json:"created_at"`
}
