package services

import (
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	"github.com/dmitrijs2005/passkeeper/internal/strength"
)

// GeneratedPassword is a fresh candidate with its strength. It is never
// persisted.
type GeneratedPassword struct {
	Password string          `json:"password"`
	Strength strength.Result `json:"strength"`
}

// PasswordService exposes generation and scoring. It has no state.
type PasswordService struct {
	generator PasswordGenerator
}

func NewPasswordService(generator PasswordGenerator) *PasswordService {
	return &PasswordService{generator: generator}
}

func (s *PasswordService) Generate(opts passgen.Options) (*GeneratedPassword, error) {
	p, err := s.generator.Generate(opts)
	if err != nil {
		return nil, err
	}
	return &GeneratedPassword{Password: p, Strength: strength.Score(p)}, nil
}

func (s *PasswordService) Score(password string) strength.Result {
	return strength.Score(password)
}
