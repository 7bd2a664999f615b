package service

import "errors"

var (
	// ErrNameRequired is returned when a submitted document name or
	// credential field is empty after sanitization.
	ErrNameRequired = errors.New("a name is required")
	// ErrBadExtension is returned when a name's extension is outside the
	// set allowed for the operation.
	ErrBadExtension = errors.New("unsupported file extension")
	// ErrNoFile is returned when an upload request carries no file.
	ErrNoFile = errors.New("no file selected")
	// ErrTooLarge is returned when an upload exceeds the size limit.
	ErrTooLarge = errors.New("file too large")
	// ErrInvalidCredentials is returned on sign-in failure. It does not
	// distinguish unknown usernames from wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserTaken is returned when registering an existing username.
	ErrUserTaken = errors.New("username already taken")
)
