package model

// Credential is one row of the credential file. IDs are sequential strings
// assigned at signup; passwords are stored in plain text.
type Credential struct {
	ID       string
	Username string
	Password string
}
