package wcwidth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneASCIIIsOneColumn(t *testing.T) {
	assert.Equal(t, 1, Rune('a'))
	assert.Equal(t, 1, Rune('!'))
}

func TestRuneCombiningIsZero(t *testing.T) {
	assert.Equal(t, 0, Rune(0x0301)) // combining acute accent
}

func TestRuneFullwidthIsTwo(t *testing.T) {
	assert.Equal(t, 2, Rune('世'))
	assert.Equal(t, 2, Rune('界'))
}

func TestStringSumsRuneWidths(t *testing.T) {
	assert.Equal(t, 3, String("a世"))
}

func TestRunesBetweenClampsBounds(t *testing.T) {
	rs := []rune("a世b")
	assert.Equal(t, 3, RunesBetween(rs, -5, 100))
	assert.Equal(t, 2, RunesBetween(rs, 1, 3))
}

func TestZWJAndRegionalIndicator(t *testing.T) {
	assert.True(t, IsZWJ(0x200D))
	assert.True(t, IsRegionalIndicator(0x1F1E6))
	assert.False(t, IsRegionalIndicator('a'))
}
