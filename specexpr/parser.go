package specexpr

import (
	"strings"

	"github.com/gradctl/degreepath/attribute"
)

// Parse builds the AST for a specification string. Parse never returns
// an error: an unbalanced '(' is accepted and implicitly closed at
// end-of-input (spec §7), and an empty or malformed factor is treated
// as the literal True (spec §4.2 "empty string is True").
func Parse(spec string) Node {
	p := &parser{toks: tokenize(spec)}
	return p.parseTerm()
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) advance() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// parseTerm parses a left-to-right chain of Factors joined by & or |,
// stopping at a closing ')' or end-of-input. Precedence between & and |
// is intentionally absent: both bind at the same level, left to right.
func (p *parser) parseTerm() Node {
	parts := []Node{p.parseFactor()}
	var ops []Op

	for {
		t, ok := p.peek()
		if !ok || t.kind == tokRParen {
			break
		}
		switch t.kind {
		case tokAnd:
			p.advance()
			ops = append(ops, OpAnd)
			parts = append(parts, p.parseFactor())
		case tokOr:
			p.advance()
			ops = append(ops, OpOr)
			parts = append(parts, p.parseFactor())
		default:
			// An atom token directly following another factor with no
			// connective is not valid per grammar; stop rather than loop.
			return finishTerm(parts, ops)
		}
	}

	return finishTerm(parts, ops)
}

func finishTerm(parts []Node, ops []Op) Node {
	if len(parts) == 1 {
		return parts[0]
	}
	return &Chain{Parts: parts, Ops: ops}
}

// parseFactor parses '(' Term ')' | Atom | 'True' | 'False', or an
// implicit True when no token is available.
func (p *parser) parseFactor() Node {
	t, ok := p.peek()
	if !ok {
		return &Literal{Value: true}
	}

	switch t.kind {
	case tokLParen:
		p.advance()
		inner := p.parseTerm()
		if rt, ok := p.peek(); ok && rt.kind == tokRParen {
			p.advance()
		}
		// else: unbalanced '(' — accepted, implicitly closed at EOF.
		return inner
	case tokRParen:
		// Stray ')' starting a factor: leave it for parseTerm to stop on,
		// and contribute an implicit True for this empty factor.
		return &Literal{Value: true}
	case tokAtom:
		p.advance()
		return atomNode(t.text)
	default:
		return &Literal{Value: true}
	}
}

func atomNode(raw string) Node {
	switch raw {
	case "True":
		return &Literal{Value: true}
	case "False":
		return &Literal{Value: false}
	}

	if path, ok := strings.CutSuffix(raw, "#"); ok {
		return &Atom{Path: trimDot(path), Kind: KindPresence}
	}
	if path, ok := strings.CutSuffix(raw, "*"); ok {
		return &Atom{Path: trimDot(path), Kind: KindWildcard}
	}

	return &Atom{Path: trimDot(raw), Kind: KindExact}
}

func trimDot(s string) attribute.Attribute {
	return attribute.Attribute(strings.TrimSuffix(s, "."))
}
