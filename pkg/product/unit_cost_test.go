package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitCostFromEstimate(t *testing.T) {
	tests := []struct {
		name string
		cost float64
		unit string
		want float64
	}{
		{"kilograms divided", 10.0, "kg", 0.01},
		{"liters divided", 5.0, "l", 0.005},
		{"milliliters divided", 2.0, "ml", 0.002},
		{"case insensitive", 10.0, "KG", 0.01},
		{"count kept", 0.10, "unit", 0.10},
		{"pieces kept", 1.5, "piece", 1.5},
		{"unknown unit kept", 3.0, "bunch", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, UnitCostFromEstimate(tt.cost, tt.unit), 1e-9)
		})
	}
}

func TestIsMassOrVolumeUnit(t *testing.T) {
	assert.True(t, IsMassOrVolumeUnit("kg"))
	assert.True(t, IsMassOrVolumeUnit(" Liters "))
	assert.False(t, IsMassOrVolumeUnit("unit"))
	assert.False(t, IsMassOrVolumeUnit(""))
}
