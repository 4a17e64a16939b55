package specexpr

import "github.com/gradctl/degreepath/attribute"

// Bindings maps a wildcard Atom's key (the prefix before '*') to the
// distinct completion segments observed while evaluating it against one
// course. A key with an empty value set means the wildcard fired with
// no further segments to bind (should not normally occur, since a fired
// wildcard by definition matched at least one attribute extending it).
type Bindings map[attribute.Attribute]map[string]struct{}

// Merge folds src into dst, creating dst if nil, and returns the result.
func (dst Bindings) Merge(src Bindings) Bindings {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(Bindings, len(src))
	}
	for k, vs := range src {
		set := dst[k]
		if set == nil {
			set = make(map[string]struct{}, len(vs))
			dst[k] = set
		}
		for v := range vs {
			set[v] = struct{}{}
		}
	}
	return dst
}

// Result is the outcome of evaluating a Node against one course.
type Result struct {
	Value    bool
	Bindings Bindings
}

// Eval evaluates n against course's attributes, short-circuiting '&'/'|'
// exactly as specexpr's grammar requires: the right operand of a
// short-circuited connective is never evaluated, so it never contributes
// wildcard bindings.
func Eval(n Node, course *attribute.Set) Result {
	switch v := n.(type) {
	case *Literal:
		return Result{Value: v.Value}

	case *Atom:
		return evalAtom(v, course)

	case *Chain:
		res := Eval(v.Parts[0], course)
		for i, op := range v.Ops {
			needRHS := true
			switch op {
			case OpAnd:
				needRHS = res.Value
			case OpOr:
				needRHS = !res.Value
			}
			if !needRHS {
				continue
			}
			rhs := Eval(v.Parts[i+1], course)
			res.Bindings = res.Bindings.Merge(rhs.Bindings)
			switch op {
			case OpAnd:
				res.Value = res.Value && rhs.Value
			case OpOr:
				res.Value = res.Value || rhs.Value
			}
		}
		return res

	default:
		return Result{Value: true}
	}
}

func evalAtom(a *Atom, course *attribute.Set) Result {
	if a.Path.HasAbsentSegment() {
		// Absent markers (NA/ANY/-1) impose no constraint.
		return Result{Value: true}
	}

	switch a.Kind {
	case KindExact:
		return Result{Value: course.Has(a.Path)}

	case KindPresence:
		return Result{Value: len(course.GetByHead(a.Path)) > 0}

	case KindWildcard:
		completions := course.Next(a.Path)
		if len(completions) == 0 {
			return Result{Value: false}
		}
		set := make(map[string]struct{}, len(completions))
		for _, c := range completions {
			set[c] = struct{}{}
		}
		return Result{Value: true, Bindings: Bindings{a.Path: set}}

	default:
		return Result{Value: true}
	}
}
