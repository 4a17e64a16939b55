package specexpr

import (
	"strings"

	"github.com/gradctl/degreepath/attribute"
)

// AtomKind distinguishes the three atom modifiers.
type AtomKind int

const (
	// KindExact requires an exact attribute match.
	KindExact AtomKind = iota
	// KindWildcard matches any attribute extending the prefix and records
	// the set of completions as a potential template-expansion binding.
	KindWildcard
	// KindPresence matches any attribute extending the prefix; binds nothing.
	KindPresence
)

// Op is a binary boolean connective.
type Op int

const (
	// OpAnd is short-circuit AND.
	OpAnd Op = iota
	// OpOr is short-circuit OR.
	OpOr
)

// Node is a parsed specification expression.
type Node interface {
	node()
}

// Literal is a bare True/False atom, or the result of an empty factor.
type Literal struct {
	Value bool
}

func (*Literal) node() {}

// Atom is a dotted-attribute-path atom with an optional modifier.
type Atom struct {
	// Path is the attribute prefix with any '*'/'#' modifier stripped.
	Path attribute.Attribute
	Kind AtomKind
}

func (*Atom) node() {}

// Chain is a flat left-to-right sequence of Factors joined by Ops.
// len(Ops) == len(Parts)-1. A single-Factor Term is returned as that
// Factor directly, never wrapped in a Chain.
type Chain struct {
	Parts []Node
	Ops   []Op
}

func (*Chain) node() {}

// WildcardKey returns the attribute prefix that a wildcard Atom binds on,
// i.e. attribute.BeforeWildcard applied to the raw spec text. Exposed so
// callers that already hold a concrete Atom don't need to re-derive it.
func (a *Atom) WildcardKey() attribute.Attribute {
	return a.Path
}

// String reconstructs a human-readable form of n, mainly for logging.
func String(n Node) string {
	switch v := n.(type) {
	case *Literal:
		if v.Value {
			return "True"
		}
		return "False"
	case *Atom:
		suffix := ""
		switch v.Kind {
		case KindWildcard:
			suffix = string(attribute.Wildcard)
		case KindPresence:
			suffix = string(attribute.Presence)
		}
		return string(v.Path) + suffix
	case *Chain:
		var b strings.Builder
		b.WriteString(String(v.Parts[0]))
		for i, op := range v.Ops {
			if op == OpAnd {
				b.WriteString(" & ")
			} else {
				b.WriteString(" | ")
			}
			b.WriteString(String(v.Parts[i+1]))
		}
		return b.String()
	default:
		return "?"
	}
}
