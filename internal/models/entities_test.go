package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatLabel(t *testing.T) {
	tests := []struct {
		name string
		seat Seat
		want string
	}{
		{"numeric seat", Seat{Section: "A", Row: 12, Number: "4"}, "A-124"},
		{"lettered seat", Seat{Section: "A", Row: 12, Number: "B"}, "A-12B"},
		{"balcony section", Seat{Section: "Balcony", Row: 1, Number: "1"}, "Balcony-11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.seat.Label())
		})
	}
}
