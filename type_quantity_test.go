package carteira

import "testing"

func TestQuantity_ExactDecimals(t *testing.T) {
	// 0.1 + 0.2 is exactly 0.3, no float drift.
	got := Q(0.1).Add(Q(0.2))
	if !got.Equal(Q(0.3)) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}
	if got.String() != "0.3" {
		t.Errorf("String() = %q, want %q", got.String(), "0.3")
	}
}

func TestQuantity_Predicates(t *testing.T) {
	if !Q(1).IsPositive() || Q(1).IsNegative() || Q(1).IsZero() {
		t.Errorf("predicates wrong for 1")
	}
	if Q(-1).IsPositive() || !Q(-1).IsNegative() {
		t.Errorf("predicates wrong for -1")
	}
	if !Q(0).IsZero() {
		t.Errorf("IsZero() = false for 0")
	}
	if !Q(2).GreaterThan(Q(1)) || !Q(1).LessThan(Q(2)) {
		t.Errorf("comparisons wrong for 1 and 2")
	}
}

func TestParseQuantity(t *testing.T) {
	q, err := ParseQuantity("0.0025")
	if err != nil {
		t.Fatalf("ParseQuantity() error = %v", err)
	}
	if !q.Equal(Q(0.0025)) {
		t.Errorf("ParseQuantity(\"0.0025\") = %s", q)
	}
	if _, err := ParseQuantity("many"); err == nil {
		t.Errorf("ParseQuantity(\"many\") accepted a non-number")
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(65.53).String(); got != "65.53%" {
		t.Errorf("String() = %q, want %q", got, "65.53%")
	}
	if got := Percent(8).SignedString(); got != "+8.00%" {
		t.Errorf("SignedString() = %q, want %q", got, "+8.00%")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want %q", got, "-")
	}
	if !Percent(10).Equal(10.00001) {
		t.Errorf("Equal() too strict for near-identical percents")
	}
	if Percent(10).Equal(10.1) {
		t.Errorf("Equal() = true for clearly different percents")
	}
}
