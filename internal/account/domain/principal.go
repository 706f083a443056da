package domain

// Principal is the authenticated identity behind a request. It is built at
// the HTTP boundary from the verified session and passed down explicitly;
// services never reach into ambient session state.
type Principal struct {
	ID        string
	Name      string
	SessionID string

	// OAuthLinked is true when the user signed up through a third-party
	// identity provider. Resolved from storage, not trusted from claims.
	OAuthLinked bool
}
