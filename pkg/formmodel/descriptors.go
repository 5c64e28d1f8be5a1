package formmodel

import "github.com/phishguard/guardkit/pkg/forms"

// namePattern matches the contract's fullName constraint.
const namePattern = `^[a-zA-Z\s]+$`

// RegistrationForm returns the canonical signup form descriptor. It mirrors
// the signupUser operation of the embedded contract exactly; the drift check
// in the tests keeps the two in lockstep.
func RegistrationForm() Form {
	minName, maxName := 2, 255
	minPassword := 8

	return Form{
		OperationID: "signupUser",
		Endpoint:    "/api/v1/auth/signup",
		Method:      "POST",
		Title:       "Register a new account",
		Fields: []Field{
			{
				Name:        forms.FieldFullName,
				Kind:        KindText,
				Label:       "Full Name",
				Description: "Display name, letters and spaces only",
				Required:    true,
				MinLength:   &minName,
				MaxLength:   &maxName,
				Pattern:     namePattern,
				Order:       10,
			},
			{
				Name:     forms.FieldEmail,
				Kind:     KindEmail,
				Label:    "Email",
				Required: true,
				Order:    20,
			},
			{
				Name:      forms.FieldPassword,
				Kind:      KindPassword,
				Label:     "Password",
				Required:  true,
				MinLength: &minPassword,
				Order:     30,
			},
			{
				Name:     forms.FieldConfirmPassword,
				Kind:     KindPassword,
				Label:    "Confirm Password",
				Required: true,
				Order:    40,
			},
			{
				Name:     forms.FieldAgreeToTerms,
				Kind:     KindCheckbox,
				Label:    "Agree To Terms",
				Required: true,
				Order:    50,
			},
			{
				Name:     forms.FieldAgreeToPrivacy,
				Kind:     KindCheckbox,
				Label:    "Agree To Privacy",
				Required: true,
				Order:    60,
			},
			{
				Name:    forms.FieldSubscribeNewsletter,
				Kind:    KindCheckbox,
				Label:   "Subscribe Newsletter",
				Default: false,
				Order:   70,
			},
		},
	}
}

// LoginForm returns the canonical login form descriptor.
func LoginForm() Form {
	return Form{
		OperationID: "loginUser",
		Endpoint:    "/api/v1/auth/login",
		Method:      "POST",
		Title:       "Authenticate an existing account",
		Fields: []Field{
			{
				Name:     forms.FieldEmail,
				Kind:     KindEmail,
				Label:    "Email",
				Required: true,
				Order:    10,
			},
			{
				Name:     forms.FieldPassword,
				Kind:     KindPassword,
				Label:    "Password",
				Required: true,
				Order:    20,
			},
			{
				Name:    forms.FieldRememberMe,
				Kind:    KindCheckbox,
				Label:   "Remember Me",
				Default: false,
				Order:   30,
			},
		},
	}
}

// ProfileForm returns the canonical profile update form descriptor. No field
// is required: absent fields mean "leave unchanged".
func ProfileForm() Form {
	minName, maxName := 2, 255

	return Form{
		OperationID: "updateProfile",
		Endpoint:    "/api/v1/profile",
		Method:      "PUT",
		Title:       "Update mutable profile fields",
		Fields: []Field{
			{
				Name:      forms.FieldFullName,
				Kind:      KindText,
				Label:     "Full Name",
				MinLength: &minName,
				MaxLength: &maxName,
				Pattern:   namePattern,
				Order:     10,
			},
			{
				Name:  forms.FieldSubscribeNewsletter,
				Kind:  KindCheckbox,
				Label: "Subscribe Newsletter",
				Order: 20,
			},
		},
	}
}

// ScanForm returns the canonical single-field URL scan descriptor.
func ScanForm() Form {
	return Form{
		OperationID: "predictURL",
		Endpoint:    "/api/v1/predict",
		Method:      "POST",
		Title:       "Classify a URL",
		Fields: []Field{
			{
				Name:     "url",
				Kind:     KindText,
				Label:    "Url",
				Required: true,
			},
		},
	}
}
