package carteira

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Quote is the result of a price lookup: either a price or nothing.
// Lookups never raise to the caller, they degrade to OK == false.
type Quote struct {
	Price decimal.Decimal
	OK    bool
}

// FxRate is the result of an exchange-rate lookup for the fixed
// USD/BRL pair.
type FxRate struct {
	Rate decimal.Decimal
	OK   bool
}

// QuoteProvider resolves the latest market price for a symbol, in the
// asset's native currency.
type QuoteProvider interface {
	Latest(symbol string) Quote
}

// RateProvider resolves the latest USD/BRL exchange rate.
type RateProvider interface {
	USDBRL() FxRate
}

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the key embeds today's date, so the local cache expires daily.
	key := fmt.Sprintf("%s %s %s", Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response in the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(os.TempDir(), key))
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a disk cache that expires every day.
func daily() *http.Client {
	return &http.Client{
		Transport: &diskCache{http.DefaultTransport},
		Timeout:   10 * time.Second,
	}
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func jwget(client *http.Client, addr string, data any) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// yahoo rejects requests without a user agent.
	req.Header.Set("User-Agent", "carteira/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

const yahooChartURL = "https://query2.finance.yahoo.com/v8/finance/chart"

// YahooMarket is the live QuoteProvider and RateProvider over the
// Yahoo Finance v8 chart endpoint.
type YahooMarket struct {
	client  *http.Client
	baseURL string
}

// NewYahooMarket creates a market-data source with a daily disk cache.
func NewYahooMarket() *YahooMarket {
	return &YahooMarket{client: daily(), baseURL: yahooChartURL}
}

// yahooLatest fetches the latest regular market price for a ticker.
func (y *YahooMarket) yahooLatest(ticker string) (float64, error) {
	addr := fmt.Sprintf("%s/%s?interval=1d&range=1d", y.baseURL, url.PathEscape(ticker))
	var jobj any
	if err := jwget(y.client, addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", ticker, err)
	}
	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer, so keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: %q not a number: %v", ticker, path, jval)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid price for %q: %v", ticker, val)
	}
	return val, nil
}

// Latest implements QuoteProvider. A failed or non-positive lookup is
// logged and reported as unavailable, never as an error.
func (y *YahooMarket) Latest(symbol string) Quote {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Quote{}
	}
	val, err := y.yahooLatest(symbol)
	if err != nil {
		log.Printf("price unavailable for %s: %v", symbol, err)
		return Quote{}
	}
	return Quote{Price: decimal.NewFromFloat(val), OK: true}
}

// USDBRL implements RateProvider using the USDBRL=X forex ticker.
func (y *YahooMarket) USDBRL() FxRate {
	val, err := y.yahooLatest("USDBRL=X")
	if err != nil {
		log.Printf("USD/BRL rate unavailable: %v", err)
		return FxRate{}
	}
	return FxRate{Rate: decimal.NewFromFloat(val), OK: true}
}

// StaticQuotes is a fixed in-memory QuoteProvider, for tests and
// offline runs. Symbols missing from the map are unavailable.
type StaticQuotes map[string]float64

func (s StaticQuotes) Latest(symbol string) Quote {
	val, ok := s[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return Quote{}
	}
	return Quote{Price: decimal.NewFromFloat(val), OK: true}
}

// NoQuotes is a QuoteProvider for which every price is unavailable.
type NoQuotes struct{}

func (NoQuotes) Latest(string) Quote { return Quote{} }

// Fx builds an available FxRate from a float value.
func Fx(rate float64) FxRate {
	return FxRate{Rate: decimal.NewFromFloat(rate), OK: true}
}
