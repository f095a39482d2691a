// Package domain holds DTOs for networks http and service contracts
package domain

import (
	"encoding/json"
	"strconv"
)

// FindInput is the body of a network lookup
type FindInput struct {
	Name string `json:"name" validate:"required,max=200" example:"Гугл Адс"`
}

// FindResult is the best matching network, or nulls with a not found message
type FindResult struct {
	Match      *string         `json:"match" example:"Google Ads"`
	Similarity *int            `json:"similarity" example:"78"`
	NetworkID  json.RawMessage `json:"network_id" swaggertype:"integer" example:"42"`
	Message    string          `json:"message" example:"Найдено: Google Ads (схожесть: 78%)"`
}

const notFoundMessage = "Название не найдено"

// Found builds a result for a match; id is kept exactly as the upstream sent it
func Found(name string, score int, id json.RawMessage) FindResult {
	return FindResult{
		Match:      &name,
		Similarity: &score,
		NetworkID:  id,
		Message:    "Найдено: " + name + " (схожесть: " + strconv.Itoa(score) + "%)",
	}
}

// NotFound is the result when no network clears the threshold
func NotFound() FindResult { return FindResult{Message: notFoundMessage} }

