package search

import (
	"strconv"
	"strings"
)

const DefaultLimit = 10

// Query represents the structured parameters of a message search.
// It decouples the raw user input from the index engine requirements.
type Query struct {
	RawInput string // The original input from the user
	Terms    string // The actual text to search in the index
	ChatID   string // Optional chat restriction
	Limit    int    // Number of results
}

// NewSearchQuery parses a raw string to extract command-line style arguments.
// Example: invoice tomorrow --chat alice@echosphere--bob@echosphere --limit 5
func NewSearchQuery(input string) *Query {
	return NewSearchQueryWithLimit(input, DefaultLimit)
}

// NewSearchQueryWithLimit is NewSearchQuery with a caller-chosen default limit.
func NewSearchQueryWithLimit(input string, limit int) *Query {
	if limit <= 0 {
		limit = DefaultLimit
	}
	query := &Query{
		RawInput: input,
		Limit:    limit,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			switch strings.TrimPrefix(part, "--") {
			case "chat":
				query.ChatID = parts[i+1]
			case "limit":
				if n, err := strconv.Atoi(parts[i+1]); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		textTerms = append(textTerms, part)
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
