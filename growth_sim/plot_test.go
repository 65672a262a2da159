package growth_sim

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveLinePlotSVG(t *testing.T) {
	table := GenerateCurves(3, rand.NewPCG(17, 17))

	svg, err := CurveLinePlotSVG(table)
	require.NoError(t, err)
	assert.True(t, strings.Contains(svg, "<svg"))
	assert.Contains(t, svg, "Logistic Growth Curves")
	for _, name := range table.Names {
		assert.Contains(t, svg, name, "legend entry missing")
	}
}
