// Package models defines data structures for quiz deck extraction.
package models

// UntitledQuestion is the question assigned to answers that appear before
// any header cell.
const UntitledQuestion = "Untitled"

// Card represents one question with its associated answers.
type Card struct {
	// Question is the header cell text that opened this card.
	Question string `json:"question"`
	// Answers contains the answer cells in encounter order. Never nil;
	// a header with no following answers yields an empty slice.
	Answers []string `json:"answers"`
}

// Deck is the ordered sequence of cards produced by one conversion run.
type Deck []Card
