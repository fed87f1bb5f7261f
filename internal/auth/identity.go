package auth

// Identity is what the identity provider tells us about the caller.
// Subject is stable and opaque; Name and Email are optional profile hints.
type Identity struct {
	Subject string
	Name    string
	Email   string
}
