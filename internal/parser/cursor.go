package parser

import "github.com/kolkov/toyc/internal/token"

// cursor is the parser's owned read position over a token slice.
// Tokens are consumed front to back; backtracking restores a saved index.
type cursor struct {
	toks []token.Token
	pos  int
}

// peek returns the token n positions ahead, or an EOF token placed at the
// end of the last real token.
func (c *cursor) peek(n int) token.Token {
	if i := c.pos + n; i >= 0 && i < len(c.toks) {
		return c.toks[i]
	}
	return token.Token{Kind: token.EOF, Pos: c.endPos()}
}

func (c *cursor) cur() token.Token {
	return c.peek(0)
}

// next consumes and returns the current token.
func (c *cursor) next() token.Token {
	tok := c.cur()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return tok
}

// last returns the most recently consumed token.
func (c *cursor) last() token.Token {
	return c.peek(-1)
}

func (c *cursor) atEOF() bool {
	return c.pos >= len(c.toks)
}

// window returns up to n tokens starting at the current one.
func (c *cursor) window(n int) []token.Token {
	end := min(c.pos+n, len(c.toks))
	return c.toks[c.pos:end]
}

func (c *cursor) mark() int {
	return c.pos
}

func (c *cursor) reset(mark int) {
	c.pos = mark
}

func (c *cursor) endPos() token.Position {
	if len(c.toks) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	last := c.toks[len(c.toks)-1]
	p := last.Pos
	p.Column += len(last.Text)
	p.Offset += len(last.Text)
	return p
}
