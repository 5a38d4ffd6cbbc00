package crypto

import (
	"github.com/nbutton23/zxcvbn-go"
)

const (
	MinScore = 0
	MaxScore = 4
)

var strengthLabels = [...]string{"Very weak", "Weak", "Okay", "Strong", "Very strong"}

// StrengthEstimate is a 0-4 score with its human readable label.
type StrengthEstimate struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// Scorer rates a password from 0 (trivially guessable) to 4.
type Scorer interface {
	Score(password string) int
}

// ScorerFunc adapts an ordinary function to the Scorer interface.
type ScorerFunc func(password string) int

// Score calls f(password).
func (f ScorerFunc) Score(password string) int {
	return f(password)
}

// ZxcvbnScorer scores passwords with zxcvbn's pattern and dictionary
// matching. UserInputs (usernames, emails, site names) are treated as extra
// dictionary words.
type ZxcvbnScorer struct {
	UserInputs []string
}

// Score returns the zxcvbn score for password.
func (z ZxcvbnScorer) Score(password string) int {
	if password == "" {
		return MinScore
	}
	return zxcvbn.PasswordStrength(password, z.UserInputs).Score
}

// EstimateStrength scores password with scorer and attaches the label.
// An empty password is "Very weak" without consulting the scorer.
func EstimateStrength(password string, scorer Scorer) StrengthEstimate {
	if password == "" {
		return StrengthFromScore(MinScore)
	}
	return StrengthFromScore(scorer.Score(password))
}

// StrengthFromScore maps a score to its label, clamping scores outside
// [MinScore, MaxScore] to the nearest bound.
func StrengthFromScore(score int) StrengthEstimate {
	score = min(max(score, MinScore), MaxScore)
	return StrengthEstimate{Score: score, Label: strengthLabels[score]}
}
