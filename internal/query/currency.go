package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/lumen-sh/lumen/internal/config"
	lumenerr "github.com/lumen-sh/lumen/internal/errors"
)

// currencyAliases maps spoken currency names onto ISO codes. Bare
// three-letter tokens are taken as ISO codes directly.
var currencyAliases = map[string]string{
	"dollar":   "USD",
	"dollars":  "USD",
	"usd":      "USD",
	"euro":     "EUR",
	"euros":    "EUR",
	"eur":      "EUR",
	"pound":    "GBP",
	"pounds":   "GBP",
	"sterling": "GBP",
	"gbp":      "GBP",
	"yen":      "JPY",
	"jpy":      "JPY",
	"yuan":     "CNY",
	"renminbi": "CNY",
	"cny":      "CNY",
	"rupee":    "INR",
	"rupees":   "INR",
	"inr":      "INR",
	"franc":    "CHF",
	"francs":   "CHF",
	"chf":      "CHF",
	"cad":      "CAD",
	"aud":      "AUD",
}

// CurrencyInterpreter converts between currencies using a remote rate
// endpoint, with a second endpoint as fallback when the first cannot be
// reached at all. Every failure declines so typing stays responsive.
type CurrencyInterpreter struct {
	cfg     config.CurrencyConfig
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewCurrencyInterpreter wires the interpreter with its rate limiter.
// A zero probe interval disables limiting.
func NewCurrencyInterpreter(cfg config.CurrencyConfig, client *http.Client, logger *slog.Logger) *CurrencyInterpreter {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	var limiter *rate.Limiter
	if interval, err := cfg.ProbeInterval(); err == nil && interval > 0 {
		limiter = rate.NewLimiter(rate.Every(interval), 1)
	}
	return &CurrencyInterpreter{cfg: cfg, client: client, limiter: limiter, logger: logger}
}

var _ Interpreter = (*CurrencyInterpreter)(nil)

func (c *CurrencyInterpreter) Name() string { return "currency" }

func (c *CurrencyInterpreter) Interpret(ctx context.Context, query string) ([]Result, error) {
	req, ok := parseCurrencyQuery(query)
	if !ok {
		return nil, nil
	}

	// Converting a currency to itself needs no rate.
	if req.From == req.To {
		return []Result{CurrencyResult(req.From, req.To, req.Amount)}, nil
	}

	if timeout, err := c.cfg.LookupTimeout(); err == nil && timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, lumenerr.Wrap(lumenerr.ErrCodeLookupTimeout, err)
		}
	}

	converted, err := c.lookupPrimary(ctx, req)
	if err != nil {
		if !lumenerr.IsRetryable(err) {
			// Primary answered, just not with a usable rate. No point
			// asking the fallback the same question.
			return nil, err
		}
		c.logger.Debug("primary rate endpoint unreachable, trying fallback", "error", err)
		converted, err = c.lookupFallback(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	return []Result{CurrencyResult(req.From, req.To, converted)}, nil
}

// currencyRequest is a parsed conversion query.
type currencyRequest struct {
	Amount float64
	From   string
	To     string
}

// parseCurrencyQuery recognizes "[convert] <amount> <from> [to] <to>".
// The keywords are case-insensitive; currencies may be ISO codes or
// known aliases; the amount is any parseable float, negative included.
// Tokens after the target currency are ignored.
func parseCurrencyQuery(query string) (currencyRequest, bool) {
	fields := strings.Fields(query)
	if len(fields) > 0 && strings.EqualFold(fields[0], "convert") {
		fields = fields[1:]
	}
	if len(fields) < 3 {
		return currencyRequest{}, false
	}

	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return currencyRequest{}, false
	}

	from, ok := resolveCurrency(fields[1])
	if !ok {
		return currencyRequest{}, false
	}

	rest := fields[2:]
	if strings.EqualFold(rest[0], "to") {
		rest = rest[1:]
		if len(rest) == 0 {
			return currencyRequest{}, false
		}
	}
	to, ok := resolveCurrency(rest[0])
	if !ok {
		return currencyRequest{}, false
	}

	return currencyRequest{Amount: amount, From: from, To: to}, true
}

// resolveCurrency maps a token to an ISO code via the alias table, or
// accepts any three-letter token as a literal code.
func resolveCurrency(token string) (string, bool) {
	lower := strings.ToLower(token)
	if code, ok := currencyAliases[lower]; ok {
		return code, true
	}
	if len(token) == 3 && isAlphaToken(token) {
		return strings.ToUpper(token), true
	}
	return "", false
}

func isAlphaToken(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// lookupPrimary fetches the full rate table for the source currency and
// picks out the target rate. A transport failure is retryable (the
// caller may fall back); a bad status or missing rate is not.
func (c *CurrencyInterpreter) lookupPrimary(ctx context.Context, req currencyRequest) (float64, error) {
	url := fmt.Sprintf("%s/v4/latest/%s", strings.TrimRight(c.cfg.PrimaryURL, "/"), req.From)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, lumenerr.Wrap(lumenerr.ErrCodeLookupBadResponse, err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, lumenerr.LookupError("primary rate endpoint unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, lumenerr.New(lumenerr.ErrCodeLookupBadResponse,
			fmt.Sprintf("rate endpoint returned status %d", resp.StatusCode), nil)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, lumenerr.Wrap(lumenerr.ErrCodeLookupBadResponse, err)
	}
	rateValue, ok := body.Rates[req.To]
	if !ok {
		return 0, lumenerr.New(lumenerr.ErrCodeUnknownCurrency,
			"target currency absent from rate table", nil).WithDetail("currency", req.To)
	}
	return req.Amount * rateValue, nil
}

// lookupFallback fetches the fallback endpoint's rate table, which has
// the same shape as the primary's.
func (c *CurrencyInterpreter) lookupFallback(ctx context.Context, req currencyRequest) (float64, error) {
	url := fmt.Sprintf("%s/latest?from=%s",
		strings.TrimRight(c.cfg.FallbackURL, "/"), req.From)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, lumenerr.Wrap(lumenerr.ErrCodeLookupBadResponse, err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return 0, lumenerr.LookupError("fallback rate endpoint unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, lumenerr.New(lumenerr.ErrCodeLookupBadResponse,
			fmt.Sprintf("fallback endpoint returned status %d", resp.StatusCode), nil)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, lumenerr.Wrap(lumenerr.ErrCodeLookupBadResponse, err)
	}
	rateValue, ok := body.Rates[req.To]
	if !ok {
		return 0, lumenerr.New(lumenerr.ErrCodeUnknownCurrency,
			"target currency absent from fallback response", nil).WithDetail("currency", req.To)
	}
	return req.Amount * rateValue, nil
}
