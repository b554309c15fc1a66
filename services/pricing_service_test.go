package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/autonest/autonest_backend/models"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestComputeFuelQuoteFromQuantity(t *testing.T) {
	price := dec(t, "100")
	qty := dec(t, "10")

	quote, err := ComputeFuelQuote(price, &qty, nil)
	if err != nil {
		t.Fatalf("ComputeFuelQuote: %v", err)
	}
	if !quote.Quantity.Equal(dec(t, "10")) {
		t.Errorf("quantity = %s, want 10", quote.Quantity)
	}
	if !quote.Amount.Equal(dec(t, "1000")) {
		t.Errorf("amount = %s, want 1000", quote.Amount)
	}
}

func TestComputeFuelQuoteFromAmount(t *testing.T) {
	price := dec(t, "102.50")
	amt := dec(t, "500")

	quote, err := ComputeFuelQuote(price, nil, &amt)
	if err != nil {
		t.Fatalf("ComputeFuelQuote: %v", err)
	}
	// 500 / 102.50 = 4.878... rounds to 4.88 liters
	if !quote.Quantity.Equal(dec(t, "4.88")) {
		t.Errorf("quantity = %s, want 4.88", quote.Quantity)
	}
	// amount is recomputed from the rounded quantity
	if !quote.Amount.Equal(quote.Quantity.Mul(price).Round(2)) {
		t.Errorf("amount %s does not equal quantity x price %s",
			quote.Amount, quote.Quantity.Mul(price).Round(2))
	}
}

func TestComputeFuelQuoteKeepsAmountExact(t *testing.T) {
	prices := []string{"94.77", "102.50", "89.30", "100"}
	amounts := []string{"500", "999.99", "1", "10000"}

	for _, p := range prices {
		for _, a := range amounts {
			price := dec(t, p)
			amt := dec(t, a)
			quote, err := ComputeFuelQuote(price, nil, &amt)
			if err != nil {
				t.Fatalf("price %s amount %s: %v", p, a, err)
			}
			want := quote.Quantity.Mul(price).Round(2)
			if !quote.Amount.Equal(want) {
				t.Errorf("price %s amount %s: quote amount %s != quantity x price %s",
					p, a, quote.Amount, want)
			}
		}
	}
}

func TestComputeFuelQuoteQuantityWins(t *testing.T) {
	price := dec(t, "100")
	qty := dec(t, "5")
	amt := dec(t, "9999")

	quote, err := ComputeFuelQuote(price, &qty, &amt)
	if err != nil {
		t.Fatalf("ComputeFuelQuote: %v", err)
	}
	if !quote.Amount.Equal(dec(t, "500")) {
		t.Errorf("amount = %s, want 500 (quantity should drive the quote)", quote.Amount)
	}
}

func TestComputeFuelQuoteErrors(t *testing.T) {
	price := dec(t, "100")
	zero := dec(t, "0")
	negative := dec(t, "-5")

	cases := []struct {
		name      string
		unitPrice decimal.Decimal
		quantity  *decimal.Decimal
		amount    *decimal.Decimal
	}{
		{"neither side supplied", price, nil, nil},
		{"zero quantity", price, &zero, nil},
		{"negative quantity", price, &negative, nil},
		{"zero amount", price, nil, &zero},
		{"negative amount", price, nil, &negative},
		{"zero unit price", zero, &price, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeFuelQuote(tc.unitPrice, tc.quantity, tc.amount)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("got %v, want ValidationError", err)
			}
		})
	}
}

func TestParseQuantityField(t *testing.T) {
	got, err := ParseQuantityField("quantity_liters", "")
	if err != nil || got != nil {
		t.Errorf("empty field: got %v, %v, want nil, nil", got, err)
	}

	got, err = ParseQuantityField("quantity_liters", "12.5")
	if err != nil {
		t.Fatalf("ParseQuantityField: %v", err)
	}
	if !got.Equal(decimal.NewFromFloat(12.5)) {
		t.Errorf("got %s, want 12.5", got)
	}

	_, err = ParseQuantityField("amount_rupees", "twelve")
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("malformed field: got %v, want ValidationError", err)
	}
}

func TestCheckStock(t *testing.T) {
	if err := CheckStock(100, dec(t, "100")); err != nil {
		t.Errorf("exact stock should pass: %v", err)
	}
	if err := CheckStock(100, dec(t, "40.5")); err != nil {
		t.Errorf("within stock should pass: %v", err)
	}

	err := CheckStock(30, dec(t, "50"))
	var stockErr *models.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("got %v, want InsufficientStockError", err)
	}
	if stockErr.Requested != 50 || stockErr.Remaining != 30 {
		t.Errorf("got requested=%v remaining=%v, want 50 and 30",
			stockErr.Requested, stockErr.Remaining)
	}
}

func TestResolveSubOptionTotal(t *testing.T) {
	svc := &models.Service{
		Type: models.ServiceTypeAir,
		SubOptionPrices: map[string]float64{
			"two_wheeler":  50,
			"four_wheeler": 100,
		},
	}

	total, err := ResolveSubOptionTotal(svc, "four_wheeler")
	if err != nil {
		t.Fatalf("ResolveSubOptionTotal: %v", err)
	}
	if total != 100 {
		t.Errorf("total = %v, want 100", total)
	}

	_, err = ResolveSubOptionTotal(svc, "truck")
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("unknown option: got %v, want ValidationError", err)
	}
}

func TestPaiseAmount(t *testing.T) {
	cases := []struct {
		rupees float64
		paise  int64
	}{
		{1000, 100000},
		{102.50, 10250},
		{0.01, 1},
		{499.99, 49999},
	}
	for _, tc := range cases {
		if got := PaiseAmount(tc.rupees); got != tc.paise {
			t.Errorf("PaiseAmount(%v) = %d, want %d", tc.rupees, got, tc.paise)
		}
	}
}
