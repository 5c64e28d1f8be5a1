package forms

// Canonical field keys. These match the wire names used by the signup and
// login payloads, and key every FieldErrors map produced by this package.
const (
	FieldFullName            = "fullName"
	FieldEmail               = "email"
	FieldPassword            = "password"
	FieldConfirmPassword     = "confirmPassword"
	FieldAgreeToTerms        = "agreeToTerms"
	FieldAgreeToPrivacy      = "agreeToPrivacy"
	FieldSubscribeNewsletter = "subscribeNewsletter"
	FieldRememberMe          = "rememberMe"
)

// RegistrationForm is a snapshot of the signup form. Callers own the value;
// validation never mutates it.
type RegistrationForm struct {
	FullName            string `json:"fullName"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	ConfirmPassword     string `json:"confirmPassword"`
	AgreeToTerms        bool   `json:"agreeToTerms"`
	AgreeToPrivacy      bool   `json:"agreeToPrivacy"`
	SubscribeNewsletter bool   `json:"subscribeNewsletter"`
}

// LoginForm is a snapshot of the login form. RememberMe is a preference, not
// a validated field.
type LoginForm struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// ProfileUpdate carries a partial profile edit. Nil fields are not being
// updated and are skipped by validation.
type ProfileUpdate struct {
	FullName            *string `json:"fullName,omitempty"`
	SubscribeNewsletter *bool   `json:"subscribeNewsletter,omitempty"`
}
