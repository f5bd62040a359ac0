package carteira

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{M(115.0, BRL), "R$115,00"},
		{M(-45.0, BRL), "-R$45,00"},
		{M(5400.0, BRL), "R$5.400,00"},
		{M(1080.0, USD), "$1,080.00"},
		{M(9.583333, BRL), "R$9,58"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{M(125.0, BRL), "+R$125,00"},
		{M(-45.0, BRL), "-R$45,00"},
		{M(0.0, BRL), "-"},
	}
	for _, tc := range testCases {
		if got := tc.money.SignedString(); got != tc.want {
			t.Errorf("SignedString() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := M(100.0, BRL)
	b := M(60.0, BRL)
	if got := a.Add(b); !got.Equal(M(160.0, BRL)) {
		t.Errorf("Add() = %s, want R$160,00", got)
	}
	if got := a.Sub(b); !got.Equal(M(40.0, BRL)) {
		t.Errorf("Sub() = %s, want R$40,00", got)
	}
	if got := b.Mul(Q(3)); !got.Equal(M(180.0, BRL)) {
		t.Errorf("Mul() = %s, want R$180,00", got)
	}
	if got := a.Div(Q(8)); !got.Equal(M(12.5, BRL)) {
		t.Errorf("Div() = %s, want R$12,50", got)
	}
}

func TestMoney_ZeroValueIsWeaklyTyped(t *testing.T) {
	// the zero Money has no currency and adopts its operand's.
	var zero Money
	got := zero.Add(M(10.0, USD))
	if got.Currency() != USD {
		t.Errorf("zero.Add(USD).Currency() = %q, want %q", got.Currency(), USD)
	}
}

func TestMoney_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("adding BRL and USD amounts did not panic")
		}
	}()
	M(1.0, BRL).Add(M(1.0, USD))
}

func TestMoney_Convert(t *testing.T) {
	got := M(1080.0, USD).Convert(newDecimal(5.0), BRL)
	if !got.Equal(M(5400.0, BRL)) || got.Currency() != BRL {
		t.Errorf("Convert() = %s (%s), want R$5.400,00", got, got.Currency())
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("10.5", BRL)
	if err != nil {
		t.Fatalf("ParseMoney() error = %v", err)
	}
	if !m.Equal(M(10.5, BRL)) {
		t.Errorf("ParseMoney(\"10.5\") = %s, want R$10,50", m)
	}
	if _, err := ParseMoney("ten", BRL); err == nil {
		t.Errorf("ParseMoney(\"ten\") accepted a non-number")
	}
}
