package moderation

import "strings"

// Moderator rejects text containing any blocked term, case-insensitive
// substring match. The list comes from configuration, not policy baked into
// code.
type Moderator struct {
	terms []string
}

func New(blocklist []string) *Moderator {
	terms := make([]string, 0, len(blocklist))
	for _, t := range blocklist {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			terms = append(terms, t)
		}
	}
	return &Moderator{terms: terms}
}

// Flag returns the first blocked term found in the text, or "" if clean.
func (m *Moderator) Flag(text string) string {
	lower := strings.ToLower(text)
	for _, t := range m.terms {
		if strings.Contains(lower, t) {
			return t
		}
	}
	return ""
}

// FlagAny checks several texts (title plus each page) and returns the first
// hit.
func (m *Moderator) FlagAny(texts ...string) string {
	for _, text := range texts {
		if t := m.Flag(text); t != "" {
			return t
		}
	}
	return ""
}
