package cart

import "testing"

func TestQuantityOf(t *testing.T) {
	lines := []Line{
		{Product: apple, Quantity: 2},
		{Product: milk, Quantity: 1},
	}

	cases := []struct {
		id   string
		want int
	}{
		{apple.ID, 2},
		{milk.ID, 1},
		{banana.ID, 0},
		{"", 0},
	}

	for _, tc := range cases {
		if got := QuantityOf(lines, tc.id); got != tc.want {
			t.Errorf("QuantityOf(%q) = %d, want %d", tc.id, got, tc.want)
		}
	}

	if got := QuantityOf(nil, apple.ID); got != 0 {
		t.Errorf("QuantityOf on empty cart = %d, want 0", got)
	}
}
