package forms

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldName     = "name"
	FieldEmail    = "email"
)

func usernameField() Field {
	return Field{
		Name:        FieldUsername,
		Label:       "Username",
		Description: "This is your public username.",
		Placeholder: "john",
		Trim:        true,
		Rules:       "required,min=1,max=20," + tagUsernameFormat,
	}
}

func passwordField(strict bool) Field {
	f := Field{
		Name:        FieldPassword,
		Label:       "Password",
		Description: "Choose a strong password to keep your account secure.",
		Placeholder: "Enter your password",
		Secret:      true,
		Rules:       "required,min=8",
	}
	if strict {
		f.Rules += "," + tagPasswordStrength
	}
	return f
}

// RegisterFields is the field set of the registration form. Passwords must
// satisfy the complexity rule.
func RegisterFields() []Field {
	return []Field{usernameField(), passwordField(true)}
}

// LoginFields only checks password length so accounts created under older
// rules can still sign in.
func LoginFields() []Field {
	lf := []Field{usernameField(), passwordField(false)}
	lf[1].Description = ""
	return lf
}

// SignupFields is the field set of the JSON signup variant.
func SignupFields() []Field {
	return []Field{
		{
			Name:        FieldName,
			Label:       "Name",
			Placeholder: "John Smith",
			Trim:        true,
			Rules:       "required,max=64",
		},
		{
			Name:        FieldEmail,
			Label:       "Email",
			Placeholder: "john@example.com",
			Trim:        true,
			Rules:       "required,email",
		},
		passwordField(true),
	}
}
