package pricing

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"25,000원", 25000},
		{"118,000원", 118000},
		{"3000", 3000},
		{"₩1,234,567", 1234567},
		{"", 0},
		{"무료", 0},
		{"원", 0},
	}
	for _, c := range cases {
		if got := ParsePrice(c.in); got != c.want {
			t.Errorf("ParsePrice(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0원"},
		{900, "900원"},
		{25000, "25,000원"},
		{118000, "118,000원"},
		{1234567, "1,234,567원"},
	}
	for _, c := range cases {
		if got := FormatPrice(c.in); got != c.want {
			t.Errorf("FormatPrice(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCalculateEmpty(t *testing.T) {
	got := Calculate(nil)
	if got.TotalPrice != 0 || got.TotalPoints != 0 || got.SubscriptionPrice != 0 {
		t.Errorf("Calculate(nil) = %+v, want all zeros", got)
	}
}

func TestCalculateQuantityScaling(t *testing.T) {
	got := Calculate([]Item{{Price: "25,000원", PointValue: 500, Quantity: 2}})
	if got.TotalPrice != 50000 {
		t.Errorf("TotalPrice = %d, want 50000", got.TotalPrice)
	}
	if got.TotalPoints != 1000 {
		t.Errorf("TotalPoints = %d, want 1000", got.TotalPoints)
	}
	if got.SubscriptionPrice != 45000 {
		t.Errorf("SubscriptionPrice = %d, want 45000", got.SubscriptionPrice)
	}
}

func TestCalculateDiscountIsFloored(t *testing.T) {
	// 1,111 * 0.9 = 999.9 -> floor to 999
	got := Calculate([]Item{{Price: "1,111원", Quantity: 1}})
	if got.SubscriptionPrice != 999 {
		t.Errorf("SubscriptionPrice = %d, want 999", got.SubscriptionPrice)
	}
}

func TestCalculateMixedList(t *testing.T) {
	items := []Item{
		{Price: "25,000원", PointValue: 500, Quantity: 2},
		{Price: "30,000원", Quantity: 1}, // no points
		{Price: "무료", PointValue: 100, Quantity: 3},
	}
	got := Calculate(items)
	if got.TotalPrice != 80000 {
		t.Errorf("TotalPrice = %d, want 80000", got.TotalPrice)
	}
	if got.TotalPoints != 1300 {
		t.Errorf("TotalPoints = %d, want 1300", got.TotalPoints)
	}
	if got.SubscriptionPrice != 72000 {
		t.Errorf("SubscriptionPrice = %d, want 72000", got.SubscriptionPrice)
	}
	// deterministic
	if again := Calculate(items); again != got {
		t.Errorf("Calculate not deterministic: %+v vs %+v", again, got)
	}
}
