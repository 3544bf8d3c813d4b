package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMiles(t *testing.T) {
	t.Parallel()

	durbarMarg := Point{Lat: 27.712, Lng: 85.3155}
	jhamsikhel := Point{Lat: 27.674, Lng: 85.3055}

	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", durbarMarg, durbarMarg, 0},
		{"kathmandu stores", durbarMarg, jhamsikhel, 2.7},
		{"one degree of latitude", Point{0, 0}, Point{1, 0}, 69.1},
		{"quarter meridian", Point{0, 0}, Point{90, 0}, 6218.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, DistanceMiles(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, DistanceMiles(tt.b, tt.a), 1e-9)
		})
	}
}

func TestPoint_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, Point{Lat: 90, Lng: -180}.Valid())
	assert.True(t, Point{Lat: 27.7, Lng: 85.3}.Valid())
	assert.False(t, Point{Lat: 90.1, Lng: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lng: 180.5}.Valid())
}
