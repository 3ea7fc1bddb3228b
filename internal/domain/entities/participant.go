package entities

// Participant is a registered individual, keyed by their NEAR address.
// Profile fields are empty until the participant fills them in.
type Participant struct {
	NearAddress     string
	Email           string
	FirstName       string
	LastName        string
	IsStudent       bool
	Country         string
	GitHandler      string
	LinkedinHandler string
	TwitterHandler  string
}
