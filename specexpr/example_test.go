package specexpr_test

import (
	"fmt"

	"github.com/gradctl/degreepath/attribute"
	"github.com/gradctl/degreepath/specexpr"
)

// ExampleEval_specificationScenario runs scenario S6: parse
// "(bin.1 & (bin.5 | bin.4))" once and evaluate it against three
// different course attribute sets.
func ExampleEval_specificationScenario() {
	n := specexpr.Parse("(bin.1 & (bin.5 | bin.4))")

	cases := []struct {
		name  string
		attrs []attribute.Attribute
	}{
		{"bin1 and bin5", []attribute.Attribute{"bin.1", "bin.5"}},
		{"bin1 only", []attribute.Attribute{"bin.1"}},
		{"bin5 and bin4 without bin1", []attribute.Attribute{"bin.5", "bin.4"}},
	}
	for _, c := range cases {
		fmt.Printf("%s: %v\n", c.name, specexpr.Eval(n, courseAttrs(c.attrs...)).Value)
	}
	// Output:
	// bin1 and bin5: true
	// bin1 only: false
	// bin5 and bin4 without bin1: false
}
