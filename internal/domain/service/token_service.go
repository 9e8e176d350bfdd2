package service

// TokenService issues and resolves the demo session tokens. The token is a
// readable, unsigned encoding of the user's email with some random filler.
// It carries no trust guarantee: Validate only confirms the encoding is
// well-formed, never that the token was issued or is unexpired. It exists to
// demonstrate an authentication flow and must not be mistaken for one.
type TokenService interface {
	// Generate produces a fresh opaque token for the given email.
	Generate(email string) (string, error)

	// Decode extracts the email from a token. It fails when the token is
	// not well-formed.
	Decode(token string) (string, error)

	// Validate reports whether the token is well-formed.
	Validate(token string) bool
}
