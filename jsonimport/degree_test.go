package jsonimport

import (
	"strings"
	"testing"

	"github.com/gradctl/degreepath/catalog"
	"github.com/stretchr/testify/require"
)

func TestDegrees_PreservesTemplateOrder(t *testing.T) {
	input := `{
		"BSCS": {
			"first": {"requires": 1, "replacement": false, "attributes": ["bin.1"]},
			"second": {"requires": 2, "replacement": true, "attributes": ["bin.2"]},
			"third": {"requires": 1, "replacement": false, "attributes": ["bin.3"]}
		}
	}`

	degrees, err := Degrees(strings.NewReader(input), nil)
	require.NoError(t, err)

	d, ok := degrees["BSCS"]
	require.True(t, ok)
	require.Len(t, d.Templates, 3)

	require.Equal(t, "first", d.Templates[0].Name)
	require.Equal(t, "second", d.Templates[1].Name)
	require.Equal(t, "third", d.Templates[2].Name)

	require.Greater(t, d.Templates[0].Importance, d.Templates[1].Importance)
	require.Greater(t, d.Templates[1].Importance, d.Templates[2].Importance)

	require.Equal(t, catalog.R, d.Templates[1].Replacement)
	require.Equal(t, catalog.NR, d.Templates[0].Replacement)
}

func TestDegrees_SkipsInvalidTemplate(t *testing.T) {
	input := `{
		"BSCS": {
			"bad": {"requires": 0, "replacement": false, "attributes": ["bin.1"]},
			"good": {"requires": 1, "replacement": false, "attributes": ["bin.2"]}
		}
	}`

	degrees, err := Degrees(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, degrees["BSCS"].Templates, 1)
	require.Equal(t, "good", degrees["BSCS"].Templates[0].Name)
}
