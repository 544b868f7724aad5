// Package names splits full names into parts and models a person's name
// with an explicitly optional middle component.
package names

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput reports a name that cannot be split into at least a
// first and last part.
var ErrInvalidInput = errors.New("invalid input")

// Parts is the result of splitting a full name on whitespace.
// Middle holds every token strictly between First and Last and is empty
// (never nil) for a two-token name.
type Parts struct {
	First  string
	Middle []string
	Last   string
}

// Split tokenizes fullName on whitespace and assigns the first token to
// First, the final token to Last, and everything between to Middle.
// Fewer than two tokens is an error: a single token has no defined
// first/last split.
func Split(fullName string) (Parts, error) {
	tokens := strings.Fields(fullName)
	if len(tokens) < 2 {
		return Parts{}, fmt.Errorf("%w: need at least two name tokens, got %d", ErrInvalidInput, len(tokens))
	}
	middle := make([]string, 0, len(tokens)-2)
	middle = append(middle, tokens[1:len(tokens)-1]...)
	return Parts{
		First:  tokens[0],
		Middle: middle,
		Last:   tokens[len(tokens)-1],
	}, nil
}
