package credits

import (
	"errors"
	"strings"
)

// DefaultUnitPrice is the dollar price of one credit.
const DefaultUnitPrice = 0.05

// wordsPerCredit is the billing tier size: one credit per started 1000 words.
const wordsPerCredit = 1000

// ErrInvalidWordCount is returned when a caller passes a negative word count.
var ErrInvalidWordCount = errors.New("word count must not be negative")

// Estimate is the billing-equivalent of a single analysis request.
type Estimate struct {
	WordCount int     `json:"wordCount"`
	Credits   int     `json:"credits"`
	Cost      float64 `json:"cost"`
}

// CountWords returns the number of whitespace-separated tokens in text.
// This is the single word-counting rule for the whole application; every
// place a word count is displayed or billed must go through it.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ForWordCount computes the credit charge for a word count.
// One credit covers up to 1000 words; partial tiers round up and the minimum
// charge is always one credit, matching the external billing floor.
func ForWordCount(wordCount int, unitPrice float64) (Estimate, error) {
	if wordCount < 0 {
		return Estimate{}, ErrInvalidWordCount
	}
	if unitPrice <= 0 {
		unitPrice = DefaultUnitPrice
	}
	c := (wordCount + wordsPerCredit - 1) / wordsPerCredit
	if c < 1 {
		c = 1
	}
	return Estimate{
		WordCount: wordCount,
		Credits:   c,
		Cost:      float64(c) * unitPrice,
	}, nil
}

// ForText counts the words in text and charges for them.
func ForText(text string, unitPrice float64) (Estimate, error) {
	return ForWordCount(CountWords(text), unitPrice)
}
