package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/model"
)

const (
	MinLength = 4
	MaxLength = 64

	// MaxScoredLength bounds passwords sent to the scorer; zxcvbn's matching
	// cost grows quickly with input length.
	MaxScoredLength = 256
)

var (
	ErrLengthTooShort   = fmt.Errorf("password length must be at least %d", MinLength)
	ErrLengthTooLong    = fmt.Errorf("password length must be at most %d", MaxLength)
	ErrPasswordTooLong  = fmt.Errorf("password must be at most %d characters", MaxScoredLength)
	ErrTooManyUserInput = errors.New("at most 16 user inputs are allowed")
)

const maxUserInputs = 16

// ScorerFactory builds a scorer that also penalises the given user inputs.
type ScorerFactory func(userInputs []string) crypto.Scorer

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	newScorer ScorerFactory
	source    crypto.Source
}

// NewGeneratorService creates a new GeneratorService. A nil factory selects
// zxcvbn scoring.
func NewGeneratorService(newScorer ScorerFactory) *GeneratorService {
	if newScorer == nil {
		newScorer = func(userInputs []string) crypto.Scorer {
			return crypto.ZxcvbnScorer{UserInputs: userInputs}
		}
	}
	return &GeneratorService{newScorer: newScorer, source: crypto.SecureSource}
}

// WithSource returns a copy of the service drawing randomness from src.
func (s *GeneratorService) WithSource(src crypto.Source) *GeneratorService {
	c := *s
	c.source = src
	return &c
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	defaults := crypto.DefaultOptions()
	opts := crypto.GeneratorOptions{
		Length:    intOrDefault(req.Length, defaults.Length),
		Uppercase: boolOrDefault(req.Uppercase, defaults.Uppercase),
		Lowercase: boolOrDefault(req.Lowercase, defaults.Lowercase),
		Numbers:   boolOrDefault(req.Numbers, defaults.Numbers),
		Symbols:   boolOrDefault(req.Symbols, defaults.Symbols),
	}

	// An explicit zero is allowed through and yields an empty password.
	if opts.Length != 0 {
		if opts.Length < MinLength {
			return model.GenerateResponse{}, ErrLengthTooShort
		}
		if opts.Length > MaxLength {
			return model.GenerateResponse{}, ErrLengthTooLong
		}
	}

	password := crypto.GenerateWithSource(opts, s.source)

	return model.GenerateResponse{
		Password:    password,
		Length:      len(password),
		EntropyBits: crypto.EstimateEntropyBits(password, opts),
		Strength:    crypto.EstimateStrength(password, s.newScorer(nil)),
	}, nil
}

// Evaluate estimates the strength of a caller-supplied password.
func (s *GeneratorService) Evaluate(req model.StrengthRequest) (model.StrengthResponse, error) {
	if utf8.RuneCountInString(req.Password) > MaxScoredLength {
		return model.StrengthResponse{}, ErrPasswordTooLong
	}
	if len(req.UserInputs) > maxUserInputs {
		return model.StrengthResponse{}, ErrTooManyUserInput
	}

	defaults := crypto.DefaultOptions()
	opts := crypto.GeneratorOptions{
		Uppercase: boolOrDefault(req.Uppercase, defaults.Uppercase),
		Lowercase: boolOrDefault(req.Lowercase, defaults.Lowercase),
		Numbers:   boolOrDefault(req.Numbers, defaults.Numbers),
		Symbols:   boolOrDefault(req.Symbols, defaults.Symbols),
	}

	return model.StrengthResponse{
		EntropyBits: crypto.EstimateEntropyBits(req.Password, opts),
		Strength:    crypto.EstimateStrength(req.Password, s.newScorer(req.UserInputs)),
	}, nil
}

// IsValidationError reports whether err was caused by bad caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthTooShort) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrPasswordTooLong) ||
		errors.Is(err, ErrTooManyUserInput)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func intOrDefault(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
