package tsplib_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspmeta/tsp"
	"github.com/katalvlaran/tspmeta/tsplib"
)

const square4 = `NAME : square4
TYPE : TSP
COMMENT : unit square
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 0 1
3 1 1
4 1.0 0e0
EOF
`

func TestParse_Square(t *testing.T) {
	inst, err := tsplib.Parse(strings.NewReader(square4))
	require.NoError(t, err)

	assert.Equal(t, "square4", inst.Name)
	assert.Equal(t, "TSP", inst.Type)
	assert.Equal(t, "unit square", inst.Comment)
	assert.Equal(t, "EUC_2D", inst.EdgeWeightType)
	assert.Equal(t, 4, inst.Dimension)
	assert.Equal(t, []tsp.Point{
		{ID: 1, X: 0, Y: 0},
		{ID: 2, X: 0, Y: 1},
		{ID: 3, X: 1, Y: 1},
		{ID: 4, X: 1, Y: 0},
	}, inst.Points)
}

func TestParse_LenientHeaders(t *testing.T) {
	in := "name: berlin\ndimension 2\nedge_weight_type: euc_2d\nCOMMENT: a\nCOMMENT: b\nNODE_COORD_SECTION\n 7   1.5  -2 \n\n9 3 4\n"
	inst, err := tsplib.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, "berlin", inst.Name)
	assert.Equal(t, "EUC_2D", inst.EdgeWeightType)
	assert.Equal(t, "a b", inst.Comment)
	assert.Equal(t, 2, inst.Dimension)
	assert.Equal(t, tsp.Point{ID: 7, X: 1.5, Y: -2}, inst.Points[0])
}

func TestParse_InferredDimensionAndTrailingSection(t *testing.T) {
	in := "NODE_COORD_SECTION\n1 0 0\n2 3 4\nDISPLAY_DATA_SECTION\n1 0 0\nEOF\n"
	inst, err := tsplib.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, inst.Dimension)
	assert.Len(t, inst.Points, 2)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"no section", "NAME: x\nDIMENSION: 3\n", tsplib.ErrNoPoints},
		{"empty section", "NODE_COORD_SECTION\nEOF\n", tsplib.ErrNoPoints},
		{"bad dimension", "DIMENSION: three\nNODE_COORD_SECTION\n1 0 0\n", tsplib.ErrMalformed},
		{"dimension mismatch", "DIMENSION: 3\nNODE_COORD_SECTION\n1 0 0\n2 1 1\n", tsplib.ErrDimensionMismatch},
		{"explicit weights", "EDGE_WEIGHT_TYPE: EXPLICIT\nNODE_COORD_SECTION\n1 0 0\n", tsplib.ErrUnsupportedWeightType},
		{"geo weights", "EDGE_WEIGHT_TYPE: GEO\nNODE_COORD_SECTION\n1 0 0\n", tsplib.ErrUnsupportedWeightType},
		{"short coord", "NODE_COORD_SECTION\n1 0\n", tsplib.ErrMalformed},
		{"bad x", "NODE_COORD_SECTION\n1 a 0\n", tsplib.ErrMalformed},
		{"bad id", "NODE_COORD_SECTION\n1.5 0 0\n", tsplib.ErrMalformed},
		{"duplicate id", "NODE_COORD_SECTION\n1 0 0\n1 2 2\n", tsplib.ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ErrorCarriesLineNumber(t *testing.T) {
	_, err := tsplib.Parse(strings.NewReader("NAME: x\nNODE_COORD_SECTION\n1 0 0\n2 zz 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestLoad_FileNameFallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri3.tsp")
	require.NoError(t, os.WriteFile(path, []byte("NODE_COORD_SECTION\n1 0 0\n2 1 0\n3 0 1\nEOF\n"), 0o600))

	inst, err := tsplib.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tri3", inst.Name)
	assert.Len(t, inst.Points, 3)

	_, err = tsplib.Load(filepath.Join(dir, "missing.tsp"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
