package numbering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "Sub001", Format("Sub", 1))
	assert.Equal(t, "INV014", Format("INV", 14))
	assert.Equal(t, "INV999", Format("INV", 999))
	// Padding widens, never truncates.
	assert.Equal(t, "INV1000", Format("INV", 1000))
}

func TestNextSequence(t *testing.T) {
	tests := []struct {
		name    string
		highest string
		prefix  string
		want    int
	}{
		{"empty starts at one", "", "INV", 1},
		{"increments highest", "INV005", "INV", 6},
		{"sparse sequence continues from max", "INV007", "INV", 8},
		{"wide suffix", "Sub1000", "Sub", 1001},
		{"garbage suffix restarts", "INVxyz", "INV", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextSequence(tt.highest, tt.prefix))
		})
	}
}

func TestNext(t *testing.T) {
	assert.Equal(t, "INV006", Next("INV005", "INV"))
	assert.Equal(t, "Sub001", Next("", "Sub"))
}
