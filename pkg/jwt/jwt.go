package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL vigencia de los tokens cuando la configuración no indica otra.
const DefaultTTL = 30 * time.Minute

// ErrInvalidToken token mal formado, con firma inválida o expirado.
var ErrInvalidToken = errors.New("jwt: token inválido")

// Claims son los claims estándar JWT; Subject lleva el email del usuario.
type Claims struct {
	jwt.RegisteredClaims
}

// Config parámetros del servicio de tokens.
type Config struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// Service emite y valida tokens HS256 con un secreto del servidor. Seguro para uso concurrente.
type Service struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewService construye el servicio. Devuelve error si el secreto está vacío.
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(cfg.Secret), ttl: ttl, issuer: cfg.Issuer, now: time.Now}, nil
}

// WithClock reemplaza el reloj (tests).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// TTL devuelve la vigencia configurada.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue genera un token firmado para subject con expiración now+TTL.
func (s *Service) Issue(subject string) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("jwt: subject vacío")
	}
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifica firma, estructura y expiración (sin margen) y devuelve el subject.
// Cualquier fallo se reporta como ErrInvalidToken envolviendo la causa.
func (s *Service) Validate(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("%w: claims inválidos", ErrInvalidToken)
	}
	return claims.Subject, nil
}
