package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialService derives the stored password hash for a new user.
// It is only called when a user is being created, never for existing users.
type CredentialService interface {
	Prepare(secret string) (string, error)
}

type credentialService struct {
	defaultSecret string
	cost          int
}

// NewCredentialService hashes with bcrypt. An empty secret falls back to defaultSecret.
func NewCredentialService(defaultSecret string, cost int) (CredentialService, error) {
	if defaultSecret == "" {
		return nil, fmt.Errorf("default secret is empty")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &credentialService{defaultSecret: defaultSecret, cost: cost}, nil
}

func (s *credentialService) Prepare(secret string) (string, error) {
	if secret == "" {
		secret = s.defaultSecret
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
