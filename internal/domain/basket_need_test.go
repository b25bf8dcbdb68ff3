package domain_test

import (
	"testing"

	"github.com/beegood/ufund-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

// EditCount's guard checks count+num while an accepted edit assigns num
// directly. These cases pin the behavior exactly as it stands; changing
// either half is a visible, deliberate break.
func TestBasketNeed_EditCount(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		num       int
		wantOK    bool
		wantCount int
	}{
		{name: "assigns the new value, not the sum", start: 1, num: 5, wantOK: true, wantCount: 5},
		{name: "rejects when sum is negative", start: 1, num: -2, wantOK: false, wantCount: 1},
		{name: "guard passes on zero sum but assigns num", start: 1, num: -1, wantOK: true, wantCount: -1},
		{name: "zero onto zero", start: 0, num: 0, wantOK: true, wantCount: 0},
		{name: "shrink", start: 9, num: 2, wantOK: true, wantCount: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := domain.BasketNeed{Need: domain.Need{ID: 1}, Count: tt.start}
			ok := line.EditCount(tt.num)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCount, line.Count)
		})
	}
}
