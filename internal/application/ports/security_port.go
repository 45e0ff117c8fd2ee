package ports

// PasswordHasher puerto del hasher de credenciales (implementado por pkg/password).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	// Verify nunca falla: un digest malformado es simplemente false.
	Verify(plain, digest string) bool
}

// TokenService puerto de emisión y validación de tokens de acceso (implementado por pkg/jwt).
type TokenService interface {
	Issue(subject string) (string, error)
	// Validate devuelve el subject del token o error si es inválido o expiró.
	Validate(token string) (string, error)
}
