package model

import "github.com/vaultpass/passgen-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Pointer fields distinguish between missing (nil -> default) and explicit values,
// so an explicit length of 0 is honoured.
type GenerateRequest struct {
	Length    *int  `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password    string                  `json:"password"`
	Length      int                     `json:"length"`
	EntropyBits float64                 `json:"entropy_bits"`
	Strength    crypto.StrengthEstimate `json:"strength"`
}

// StrengthRequest asks for the strength of a caller-supplied password.
// The character class flags describe how it was generated and only affect
// the entropy estimate.
type StrengthRequest struct {
	Password   string   `json:"password"`
	Uppercase  *bool    `json:"uppercase"`
	Lowercase  *bool    `json:"lowercase"`
	Numbers    *bool    `json:"numbers"`
	Symbols    *bool    `json:"symbols"`
	UserInputs []string `json:"user_inputs,omitempty"`
}

// StrengthResponse represents a strength estimate response.
type StrengthResponse struct {
	EntropyBits float64                 `json:"entropy_bits"`
	Strength    crypto.StrengthEstimate `json:"strength"`
}
