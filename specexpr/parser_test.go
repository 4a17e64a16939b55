package specexpr_test

import (
	"testing"

	"github.com/gradctl/degreepath/attribute"
	"github.com/gradctl/degreepath/specexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func courseAttrs(attrs ...attribute.Attribute) *attribute.Set {
	s := attribute.NewSet()
	for _, a := range attrs {
		s.Add(a)
	}
	return s
}

// TestParse_S6 is spec scenario S6: parse "(bin.1 & (bin.5 | bin.4))" and
// evaluate it against three different course attribute sets.
func TestParse_S6(t *testing.T) {
	n := specexpr.Parse("(bin.1 & (bin.5 | bin.4))")

	tests := []struct {
		name  string
		attrs *attribute.Set
		want  bool
	}{
		{"bin1 and bin5", courseAttrs("bin.1", "bin.5"), true},
		{"bin1 only", courseAttrs("bin.1"), false},
		{"bin5 and bin4 without bin1", courseAttrs("bin.5", "bin.4"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := specexpr.Eval(n, tt.attrs)
			assert.Equal(t, tt.want, got.Value)
		})
	}
}

// TestParse_AtomRoundTrip covers invariant 8: parse(a) must evaluate
// has_attribute(a) for any atom-only expression.
func TestParse_AtomRoundTrip(t *testing.T) {
	for _, raw := range []string{"bin.1", "concentration.ai", "cross_listed.cs 4100"} {
		n := specexpr.Parse(raw)
		atom, ok := n.(*specexpr.Atom)
		require.True(t, ok, raw)
		assert.Equal(t, specexpr.KindExact, atom.Kind)

		withAttr := courseAttrs(attribute.Attribute(raw))
		assert.True(t, specexpr.Eval(n, withAttr).Value)
		assert.False(t, specexpr.Eval(n, attribute.NewSet()).Value)
	}
}

func TestParse_UnbalancedParen(t *testing.T) {
	n := specexpr.Parse("(bin.1 & bin.2")
	res := specexpr.Eval(n, courseAttrs("bin.1", "bin.2"))
	assert.True(t, res.Value)
}

func TestParse_EmptyStringIsTrue(t *testing.T) {
	n := specexpr.Parse("")
	assert.True(t, specexpr.Eval(n, attribute.NewSet()).Value)
}

func TestParse_Literals(t *testing.T) {
	assert.True(t, specexpr.Eval(specexpr.Parse("True"), attribute.NewSet()).Value)
	assert.False(t, specexpr.Eval(specexpr.Parse("False"), attribute.NewSet()).Value)
}

func TestParse_Presence(t *testing.T) {
	n := specexpr.Parse("concentration#")
	assert.True(t, specexpr.Eval(n, courseAttrs("concentration.ai")).Value)
	assert.False(t, specexpr.Eval(n, attribute.NewSet()).Value)
}

func TestParse_WildcardBindings(t *testing.T) {
	n := specexpr.Parse("concentration.*")
	res := specexpr.Eval(n, courseAttrs("concentration.ai"))
	require.True(t, res.Value)
	require.Contains(t, res.Bindings, attribute.Attribute("concentration"))
	assert.Contains(t, res.Bindings[attribute.Attribute("concentration")], "ai")
}

func TestParse_ShortCircuitSkipsBindings(t *testing.T) {
	// False & (concentration.*) must not evaluate the wildcard atom at all.
	n := specexpr.Parse("False & concentration.*")
	res := specexpr.Eval(n, courseAttrs("concentration.ai"))
	assert.False(t, res.Value)
	assert.Empty(t, res.Bindings)

	// True | (concentration.*) must short-circuit the OR the same way.
	n2 := specexpr.Parse("True | concentration.*")
	res2 := specexpr.Eval(n2, courseAttrs("concentration.ai"))
	assert.True(t, res2.Value)
	assert.Empty(t, res2.Bindings)
}

func TestParse_AbsentSegmentImposesNoConstraint(t *testing.T) {
	n := specexpr.Parse("subject.NA")
	assert.True(t, specexpr.Eval(n, attribute.NewSet()).Value)
}
