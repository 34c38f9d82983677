package model

import (
	"strings"

	"github.com/Perfectmodels/perfect-model-hub-sub001/pkg/textutil"
)

// Distinction is a named award with the titles earned under it.
type Distinction struct {
	Name   string   `json:"name"`
	Titles []string `json:"titles"`
}

// Model is a talent profile. PasswordHash is a bcrypt hash; the plaintext
// credential is handed to the model once at creation and never stored.
type Model struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Username     string            `json:"username"`
	PasswordHash string            `json:"-"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Age          int               `json:"age"`
	Height       string            `json:"height"`
	Gender       string            `json:"gender"`
	Location     string            `json:"location"`
	ImageURL     string            `json:"imageUrl"`
	Portfolio    []string          `json:"portfolioImages"`
	Categories   []string          `json:"categories"`
	Distinctions []Distinction     `json:"distinctions"`
	Experience   string            `json:"experience"`
	Journey      string            `json:"journey"`
	IsPublic     bool              `json:"isPublic"`
	QuizScores   map[string]int    `json:"quizScores"`
	Measurements map[string]string `json:"measurements"`
}

// MatchesName reports whether the model's display name equals the given full
// name, ignoring case, diacritics and surrounding whitespace. "Aïcha Ndong"
// matches "aicha NDONG".
func (m *Model) MatchesName(fullName string) bool {
	return strings.EqualFold(
		textutil.StripDiacritics(strings.TrimSpace(m.Name)),
		textutil.StripDiacritics(strings.TrimSpace(fullName)),
	)
}
