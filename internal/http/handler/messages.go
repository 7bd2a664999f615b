package handler

import (
	"strings"

	"filecms/internal/docname"
)

// User-facing flash copy. Kept in one place so handlers and tests agree.
const (
	msgNameRequired   = "A name is required."
	msgAlreadyExists  = "That file already exists. Please choose another name."
	msgTooLarge       = "The file is too big. Please resize or try another file."
	msgNoFile         = "Please select a file to upload."
	msgBadCredentials = "Invalid Credentials"
	msgUserTaken      = "That username already exists. Please choose another."
	msgBadRegister    = "Please enter a valid username and password."
	msgSignedOut      = "You have been signed out."
	msgWelcome        = "Welcome!"
)

// msgRegistered greets a freshly registered user. The password is never
// echoed back.
func msgRegistered(username string) string {
	return "Account successfully registered. Welcome, " + username + "!"
}

func msgBadTextExtension() string {
	return "Please include a valid extension for your file (use " +
		strings.Join(docname.TextExtensions(), ", ") + ")."
}

func msgBadUploadExtension() string {
	return "Unsupported file type. Please only use " +
		strings.Join(docname.UploadExtensions(), ", ") + "."
}
