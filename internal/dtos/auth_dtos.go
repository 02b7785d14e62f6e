package dtos

// Drafts carry `msg` struct tags: the text shown when the field fails any rule,
// or `msg_<tag>` for a specific rule.

type LoginDraft struct {
	Email    string `validate:"required" msg:"Please fill required fields."`
	Password string `validate:"required" msg:"Please fill required fields."`
}

type SignupDraft struct {
	Name            string `validate:"required" msg:"Please fill required fields."`
	Email           string `validate:"required" msg:"Please fill required fields."`
	Password        string `validate:"required" msg:"Please fill required fields."`
	ConfirmPassword string `validate:"required,eqfield=Password" msg_required:"Please fill required fields." msg_eqfield:"Passwords do not match."`
	Phone           string `validate:"omitempty,digits" msg:"Please enter a valid phone number."`
	Address         string
}

type ForgotPasswordDraft struct {
	Email string `validate:"required,email" msg_required:"Please enter your email address." msg_email:"Please enter your email address."`
}

// ResetPasswordDraft checks the length rule after presence and match, see the
// struct-level rule registered by the validation service.
type ResetPasswordDraft struct {
	Token           string `validate:"required" msg:"Please fill in all fields."`
	NewPassword     string `validate:"required" msg:"Please fill in all fields." msg_min_length:"Password must be at least 6 characters."`
	ConfirmPassword string `validate:"required,eqfield=NewPassword" msg_required:"Please fill in all fields." msg_eqfield:"Passwords do not match."`
}

// ------------------------------------------------------------------
// Wire types
// ------------------------------------------------------------------

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
