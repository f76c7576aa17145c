package polymaperr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngeo/polymap/polymaperr"
)

func TestIsMatchesWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("locate(p): %w", polymaperr.ErrPointOutside)
	assert.True(t, polymaperr.Is(wrapped, polymaperr.PointOutside))
	assert.False(t, polymaperr.Is(wrapped, polymaperr.CrossRegionPath))
}

func TestIsRejectsUnrelatedError(t *testing.T) {
	assert.False(t, polymaperr.Is(fmt.Errorf("boom"), polymaperr.InvalidPolygon))
}
