package forms

// Validate checks a registration snapshot against the full signup rule set
// and returns one message per failing field. Rule chains evaluate
// top-to-bottom per field and stop at the first failure; fields are checked
// independently of one another, so every failing field appears in the map.
func Validate(form RegistrationForm) FieldErrors {
	errs := make(FieldErrors)

	if msg, failed := firstFailure(form.FullName, fullNameChain()); failed {
		errs[FieldFullName] = msg
	}
	if msg, failed := firstFailure(form.Email, emailChain()); failed {
		errs[FieldEmail] = msg
	}
	if msg, failed := firstFailure(form.Password, passwordChain()); failed {
		errs[FieldPassword] = msg
	}
	if msg, failed := confirmPasswordFailure(form.Password, form.ConfirmPassword); failed {
		errs[FieldConfirmPassword] = msg
	}
	if !form.AgreeToTerms {
		errs[FieldAgreeToTerms] = "You must agree to the Terms of Service"
	}
	if !form.AgreeToPrivacy {
		errs[FieldAgreeToPrivacy] = "You must agree to the Privacy Policy"
	}

	return errs
}

// ValidateLogin checks a login snapshot. Only presence and email shape are
// enforced; the password composition rules apply at signup, not here.
func ValidateLogin(form LoginForm) FieldErrors {
	errs := make(FieldErrors)

	if msg, failed := firstFailure(form.Email, emailChain()); failed {
		errs[FieldEmail] = msg
	}
	if msg, failed := firstFailure(form.Password, loginPasswordChain()); failed {
		errs[FieldPassword] = msg
	}

	return errs
}

// ValidateProfileUpdate checks a partial profile edit. Nil fields are not
// being updated and are skipped entirely; a nil update is therefore valid.
func ValidateProfileUpdate(update ProfileUpdate) FieldErrors {
	errs := make(FieldErrors)

	if update.FullName != nil {
		if msg, failed := firstFailure(*update.FullName, profileNameChain()); failed {
			errs[FieldFullName] = msg
		}
	}

	return errs
}

// ValidateField runs the registration chain for a single field against a
// candidate value. Interactive front ends use it to re-check one field per
// keystroke or prompt without assembling a whole form. Boolean agreement
// fields and confirmPassword depend on more than one value and are not
// addressable here; unknown fields report no error.
func ValidateField(field, value string) (string, bool) {
	switch field {
	case FieldFullName:
		return firstFailure(value, fullNameChain())
	case FieldEmail:
		return firstFailure(value, emailChain())
	case FieldPassword:
		return firstFailure(value, passwordChain())
	default:
		return "", false
	}
}
