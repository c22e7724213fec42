package user

// DuplicateEmailError signals that registration was attempted with an
// email that already has an account.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return "a user with this email already exists"
}

// InvalidCredentialsError signals a failed email/password check. The
// message never distinguishes a missing account from a wrong password.
type InvalidCredentialsError struct{}

func (e InvalidCredentialsError) Error() string {
	return "invalid email or password"
}
