// Package security holds the credential primitives of the city guide:
// bcrypt password hashing, signed access token issuance and verification,
// and the in-memory denylist of revoked token IDs.
//
// Nothing in this package touches storage. Resolving a verified token to a
// user is done by the auth service, which combines [TokenManager] with the
// user repository.
package security
