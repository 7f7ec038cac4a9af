// Package output serializes decks for writing.
package output

import (
	"encoding/json"

	"quizdeck/pkg/deck/models"
)

// ToJSON serializes a deck as a 2-space-indented JSON array. A nil deck
// serializes as an empty array.
func ToJSON(deck models.Deck) ([]byte, error) {
	if deck == nil {
		deck = models.Deck{}
	}
	return json.MarshalIndent(deck, "", "  ")
}
