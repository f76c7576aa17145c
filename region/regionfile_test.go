package region_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngeo/polymap/region"
)

func TestLoadRegionsFileParsesPolygonsAndOutlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.json")
	content := `{
		"regions": [
			{"polygon": [[0,0],[10,0],[10,10],[0,10]]},
			{"polygon": [[20,20],[30,20],[25,30]], "outline": [[19,19],[31,19],[31,31],[19,31]]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	polygons, outlines, err := region.LoadRegionsFile(path)
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	require.Len(t, outlines, 2)

	assert.Equal(t, 4, polygons[0].N())
	assert.Nil(t, outlines[0])
	assert.Equal(t, 3, polygons[1].N())
	require.NotNil(t, outlines[1])
	assert.Equal(t, 4, outlines[1].N())
}

func TestLoadRegionsFileRejectsMissingFile(t *testing.T) {
	_, _, err := region.LoadRegionsFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
