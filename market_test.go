package carteira

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

// chartJSON builds a minimal Yahoo v8 chart payload for one price.
func chartJSON(price float64) string {
	return fmt.Sprintf(`{"chart":{"result":[{"meta":{"regularMarketPrice":%v,"currency":"BRL"}}],"error":null}}`, price)
}

func newTestMarket(handler http.HandlerFunc) (*YahooMarket, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return &YahooMarket{client: srv.Client(), baseURL: srv.URL}, srv
}

func TestYahooMarket_Latest(t *testing.T) {
	market, srv := newTestMarket(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/PETR4.SA" {
			t.Errorf("request path = %q, want /PETR4.SA", r.URL.Path)
		}
		fmt.Fprint(w, chartJSON(36.42))
	})
	defer srv.Close()

	quote := market.Latest("petr4.sa ")
	if !quote.OK {
		t.Fatalf("Latest() unavailable, want a price")
	}
	if !quote.Price.Equal(decimal.NewFromFloat(36.42)) {
		t.Errorf("Latest() price = %s, want 36.42", quote.Price)
	}
}

func TestYahooMarket_Latest_Unavailable(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
			},
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "<html>maintenance</html>")
			},
		},
		{
			name: "price missing",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"chart":{"result":[{"meta":{}}],"error":null}}`)
			},
		},
		{
			name: "price not a number",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"chart":{"result":[{"meta":{"regularMarketPrice":"n/a"}}]}}`)
			},
		},
		{
			name: "non-positive price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, chartJSON(0))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			market, srv := newTestMarket(tc.handler)
			defer srv.Close()
			if quote := market.Latest("PETR4.SA"); quote.OK {
				t.Errorf("Latest() = %s, want unavailable", quote.Price)
			}
		})
	}
}

func TestYahooMarket_Latest_EmptySymbol(t *testing.T) {
	market, srv := newTestMarket(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request for an empty symbol: %s", r.URL)
	})
	defer srv.Close()
	if quote := market.Latest("  "); quote.OK {
		t.Errorf("Latest(\"\") = %s, want unavailable", quote.Price)
	}
}

func TestYahooMarket_USDBRL(t *testing.T) {
	market, srv := newTestMarket(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/USDBRL=X" {
			t.Errorf("request path = %q, want /USDBRL=X", r.URL.Path)
		}
		fmt.Fprint(w, chartJSON(5.43))
	})
	defer srv.Close()

	fx := market.USDBRL()
	if !fx.OK {
		t.Fatalf("USDBRL() unavailable, want a rate")
	}
	if !fx.Rate.Equal(decimal.NewFromFloat(5.43)) {
		t.Errorf("USDBRL() rate = %s, want 5.43", fx.Rate)
	}
}

func TestStaticQuotes(t *testing.T) {
	quotes := StaticQuotes{"PETR4": 20}
	if quote := quotes.Latest(" petr4 "); !quote.OK || !quote.Price.Equal(decimal.NewFromInt(20)) {
		t.Errorf("Latest(\"petr4\") = %v, want 20", quote)
	}
	if quote := quotes.Latest("VALE3"); quote.OK {
		t.Errorf("Latest(\"VALE3\") available, want unavailable")
	}
}

func TestNoQuotesAndFx(t *testing.T) {
	if quote := (NoQuotes{}).Latest("PETR4"); quote.OK {
		t.Errorf("NoQuotes returned a price")
	}
	fx := Fx(5.0)
	if !fx.OK || !fx.Rate.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Fx(5.0) = %v, want an available rate of 5", fx)
	}
}
