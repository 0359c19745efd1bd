package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "zero", value: 0, want: "$0"},
		{name: "grouped thousands", value: 1234567, want: "$1,234,567"},
		{name: "cents rounded", value: 99.5, want: "$100"},
		{name: "small amount", value: 12.3, want: "$12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.value))
		})
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "1,234", Number(1234))
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "12.5", Number(12.5))
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "whole share", value: 1, want: "100.0%"},
		{name: "third", value: 0.333, want: "33.3%"},
		{name: "zero", value: 0, want: "0.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.value))
		})
	}
}

func TestEfficiency(t *testing.T) {
	assert.Equal(t, "50.000", Efficiency(50))
	assert.Equal(t, "0.125", Efficiency(0.125))
	assert.Equal(t, "1250.000", Efficiency(1250))
}

func TestRatio(t *testing.T) {
	assert.Equal(t, "0.75", Ratio(0.75))
	assert.Equal(t, "1.00", Ratio(1))
}
