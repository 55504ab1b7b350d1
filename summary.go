package toyc

import "github.com/kolkov/toyc/internal/token"

// summaryOrder is the fixed order in which groups are reported.
var summaryOrder = [...]token.Kind{
	token.KEYWORD,
	token.IDENTIFIER,
	token.OPERATOR,
	token.CONSTANT,
	token.PUNCTUATOR,
	token.LITERAL,
	token.PREPROCESSOR,
}

// Group is the distinct texts of one token kind, in first-seen order.
type Group struct {
	Kind  token.Kind
	Texts []string
}

// Name returns the plural group heading, such as "Keywords".
func (g Group) Name() string {
	if g.Kind == token.PREPROCESSOR {
		return "Preprocessor"
	}
	return g.Kind.String() + "s"
}

// Summary is a de-duplicated view of a token stream grouped by kind.
// Every group is present, possibly empty.
type Summary struct {
	Groups []Group
}

// Summarize groups the distinct texts of tokens by kind. Texts keep the
// order of their first occurrence.
func Summarize(tokens []Token) *Summary {
	index := make(map[token.Kind]int, len(summaryOrder))
	s := &Summary{Groups: make([]Group, len(summaryOrder))}
	for i, k := range summaryOrder {
		index[k] = i
		s.Groups[i].Kind = k
	}

	seen := make(map[token.Kind]map[string]bool, len(summaryOrder))
	for _, t := range tokens {
		i, ok := index[t.Kind]
		if !ok {
			continue
		}
		if seen[t.Kind] == nil {
			seen[t.Kind] = make(map[string]bool)
		}
		if seen[t.Kind][t.Text] {
			continue
		}
		seen[t.Kind][t.Text] = true
		s.Groups[i].Texts = append(s.Groups[i].Texts, t.Text)
	}
	return s
}

// Group returns the group for kind.
func (s *Summary) Group(kind token.Kind) Group {
	for _, g := range s.Groups {
		if g.Kind == kind {
			return g
		}
	}
	return Group{Kind: kind}
}
