package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/numerr"
)

func testConfig() config.AppConfig {
	return config.AppConfig{
		Radix:      10,
		Precision:  20,
		Rounding:   "even",
		FloatBase:  10,
		Algo:       "auto",
		Timeout:    time.Minute,
		ServerMode: true,
		Port:       "0",
	}
}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 1000})
	t.Cleanup(rl.Stop)
	opts = append([]Option{WithLogger(logging.NewNopLogger()), WithRateLimiter(rl), WithCollector(metrics.NewCollector(false))}, opts...)
	return NewServer(testConfig(), opts...)
}

func get(t *testing.T, h http.Handler, path string, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if params != nil {
		target += "?" + params.Encode()
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, http.NoBody))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid JSON %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHandleEval(t *testing.T) {
	t.Parallel()
	h := newTestServer(t).Handler()
	tests := []struct {
		name     string
		params   url.Values
		status   int
		result   string
		kind     string
		bits     int
		accuracy string
		errPart  string
	}{
		{name: "integer", params: url.Values{"expr": {"2^64"}}, status: 200, result: "18446744073709551616", kind: "int", bits: 65},
		{name: "radix", params: url.Values{"expr": {"2^64"}, "radix": {"16"}}, status: 200, result: "10000000000000000", kind: "int", bits: 65},
		{name: "upper", params: url.Values{"expr": {"255"}, "radix": {"16"}, "upper": {"true"}}, status: 200, result: "FF", kind: "int", bits: 8},
		{name: "float", params: url.Values{"expr": {"1/3.0"}, "prec": {"5"}}, status: 200, result: "0.33333", kind: "float", accuracy: "Below"},
		{name: "all strategies", params: url.Values{"expr": {"3^300 * 7^200"}, "algo": {"all"}}, status: 200, kind: "int", bits: 1037},
		{name: "division by zero", params: url.Values{"expr": {"1/0"}}, status: 422, errPart: "division by zero"},
		{name: "syntax error", params: url.Values{"expr": {"1 +"}}, status: 400, errPart: "1 +"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := get(t, h, "/eval", tt.params)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.status, rec.Body.String())
			}
			resp := decode[EvalResponse](t, rec)
			if tt.errPart != "" {
				if !strings.Contains(resp.Error, tt.errPart) || resp.Result != "" {
					t.Errorf("resp = %+v", resp)
				}
				return
			}
			if tt.result != "" && resp.Result != tt.result {
				t.Errorf("result = %q, want %q", resp.Result, tt.result)
			}
			if resp.Kind != tt.kind || resp.Bits != tt.bits || resp.Accuracy != tt.accuracy {
				t.Errorf("resp = %+v", resp)
			}
			if resp.Expr != tt.params.Get("expr") || resp.Duration == "" {
				t.Errorf("resp = %+v", resp)
			}
		})
	}
}

func TestHandleEvalParamErrors(t *testing.T) {
	t.Parallel()
	sec := DefaultSecurityConfig()
	sec.MaxExprLength = 8
	h := newTestServer(t, WithSecurityConfig(sec)).Handler()
	tests := []struct {
		name   string
		params url.Values
		status int
		msg    string
	}{
		{"missing expr", nil, 400, "Missing 'expr'"},
		{"blank expr", url.Values{"expr": {"  "}}, 400, "Missing 'expr'"},
		{"too long", url.Values{"expr": {"1+2+3+4+5"}}, 413, "maximum length"},
		{"radix not a number", url.Values{"expr": {"1"}, "radix": {"x"}}, 400, "'radix'"},
		{"radix out of range", url.Values{"expr": {"1"}, "radix": {"99"}}, 400, "radix must be in"},
		{"negative precision", url.Values{"expr": {"1"}, "prec": {"-1"}}, 400, "'prec'"},
		{"unknown rounding", url.Values{"expr": {"1"}, "round": {"sideways"}}, 400, "sideways"},
		{"unknown algorithm", url.Values{"expr": {"1"}, "algo": {"fft"}}, 400, "unrecognized algorithm"},
	}
	for _, tt := range tests {
		rec := get(t, h, "/eval", tt.params)
		if rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.status)
			continue
		}
		resp := decode[ErrorResponse](t, rec)
		if resp.Error != http.StatusText(tt.status) || !strings.Contains(resp.Message, tt.msg) {
			t.Errorf("%s: resp = %+v", tt.name, resp)
		}
	}
}

func postBatch(h http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/eval", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleEvalBatch(t *testing.T) {
	t.Parallel()
	h := newTestServer(t).Handler()
	rec := postBatch(h, `{"exprs": ["1+1", "2^10", "1/0", "gcd(12, 18)"], "radix": 16}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[BatchResponse](t, rec)
	if len(resp.Results) != 4 {
		t.Fatalf("got %d results", len(resp.Results))
	}
	want := []string{"2", "400", "", "6"}
	for i, r := range resp.Results {
		if r.Result != want[i] {
			t.Errorf("results[%d] = %+v, want %q", i, r, want[i])
		}
	}
	if !strings.Contains(resp.Results[2].Error, "division by zero") {
		t.Errorf("results[2].Error = %q", resp.Results[2].Error)
	}
}

func TestHandleEvalBatchLimits(t *testing.T) {
	t.Parallel()
	sec := DefaultSecurityConfig()
	sec.MaxBodyBytes = 64
	sec.MaxBatchSize = 2
	h := newTestServer(t, WithSecurityConfig(sec)).Handler()
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"too large", `{"exprs": ["` + strings.Repeat("1+", 40) + `1"]}`, http.StatusRequestEntityTooLarge},
		{"too many", `{"exprs": ["1", "2", "3"]}`, http.StatusBadRequest},
		{"empty", `{"exprs": []}`, http.StatusBadRequest},
		{"invalid JSON", `{"exprs": `, http.StatusBadRequest},
		{"bad radix", `{"exprs": ["1"], "radix": 1}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		if rec := postBatch(h, tt.body); rec.Code != tt.status {
			t.Errorf("%s: status = %d, want %d: %s", tt.name, rec.Code, tt.status, rec.Body.String())
		}
	}
}

func TestHealthAndFunctions(t *testing.T) {
	t.Parallel()
	h := newTestServer(t).Handler()

	rec := get(t, h, "/health", nil)
	if rec.Code != http.StatusOK || decode[map[string]any](t, rec)["status"] != "healthy" {
		t.Errorf("health: %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing")
	}

	rec = get(t, h, "/functions", nil)
	body := decode[map[string][]string](t, rec)
	if len(body["functions"]) == 0 || len(body["algorithms"]) != len(config.Algorithms) {
		t.Errorf("functions: %s", rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()
	h := newTestServer(t).Handler()
	for _, path := range []string{"/eval", "/health", "/functions", "/metrics"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, path, http.NoBody))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("DELETE %s = %d", path, rec.Code)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestServer(t).Handler()
	get(t, h, "/eval", url.Values{"expr": {"2^100"}})
	get(t, h, "/eval", url.Values{"expr": {"1/0"}})

	rec := get(t, h, "/metrics", nil)
	body := rec.Body.String()
	for _, s := range []string{
		`bigcalc_evaluations_total{mode="server",status="ok"} 1`,
		`bigcalc_evaluations_total{mode="server",status="division_by_zero"} 1`,
		`bigcalc_requests_total{path="/eval"} 2`,
		"bigcalc_result_bits",
	} {
		if !strings.Contains(body, s) {
			t.Errorf("metrics lack %q", s)
		}
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(RateLimiterConfig{RequestsPerMinute: 2})
	defer rl.Stop()
	h := newTestServer(t, WithRateLimiter(rl)).Handler()
	codes := make([]int, 3)
	for i := range codes {
		codes[i] = get(t, h, "/health", nil).Code
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}
}

func TestServe(t *testing.T) {
	t.Parallel()
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/eval?expr=6*7")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), `"result":"42"`) {
		t.Errorf("body = %s", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}

func TestStatusFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want int
	}{
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{context.Canceled, 499},
		{io.EOF, http.StatusInternalServerError},
		{apperrors.EvaluationError{Expr: "1 +", Cause: &eval.SyntaxError{Expr: "1 +", Pos: 3, Msg: "unexpected end of input"}}, http.StatusBadRequest},
		{apperrors.EvaluationError{Expr: "1/0", Cause: numerr.ErrDivisionByZero}, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": " 10.0.0.1, 10.0.0.2"}, "1.2.3.4:5", "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": "10.0.0.3 "}, "1.2.3.4:5", "10.0.0.3"},
		{"remote ipv4", nil, "1.2.3.4:5", "1.2.3.4"},
		{"remote ipv6", nil, "[::1]:8080", "::1"},
		{"no port", nil, "1.2.3.4", "1.2.3.4"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
		r.RemoteAddr = tt.remote
		for k, v := range tt.headers {
			r.Header.Set(k, v)
		}
		if got := getClientIP(r); got != tt.want {
			t.Errorf("%s: getClientIP = %q, want %q", tt.name, got, tt.want)
		}
	}
}
