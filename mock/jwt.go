package mock

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// createJWT signs an access token for u.
func (s *DispatchService) createJWT(u *user) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"iss":   s.Issuer,
		"sub":   strconv.Itoa(u.ID),
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// verifyJWT returns the user id carried by a valid token.
func (s *DispatchService) verifyJWT(raw string) (int, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, err
	}
	subject, err := token.Claims.GetSubject()
	if err != nil {
		return 0, err
	}
	if subject == "" {
		return 0, errors.New("missing subject")
	}
	id, err := strconv.Atoi(subject)
	if err != nil {
		return 0, fmt.Errorf("invalid subject %q: %w", subject, err)
	}
	return id, nil
}
