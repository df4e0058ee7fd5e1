package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/numerr"
)

// handleHealth responds to health check requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// handleFunctions lists the functions of the expression language.
func (s *Server) handleFunctions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"functions":  eval.Functions(),
		"algorithms": config.Algorithms,
	})
}

// handleMetrics serves the Prometheus registry.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.collector.Handler().ServeHTTP(w, r)
}

// handleEval evaluates one expression from the query string on GET, or a
// batch from a JSON body on POST.
func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleEvalQuery(w, r)
	case http.MethodPost:
		s.handleEvalBatch(w, r)
	default:
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) handleEvalQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	expr := q.Get("expr")
	if err := s.checkExpr(expr); err != nil {
		s.writeParamError(w, err)
		return
	}
	cfg, err := s.requestConfig(q)
	if err != nil {
		s.writeParamError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()
	resp := s.evaluate(ctx, cfg, expr)
	s.writeJSONResponse(w, resp.status, resp)
}

func (s *Server) handleEvalBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	body := http.MaxBytesReader(w, r.Body, s.securityConfig.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeErrorResponse(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Request body exceeds %d bytes", s.securityConfig.MaxBodyBytes))
			return
		}
		s.writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	if len(req.Exprs) == 0 {
		s.writeErrorResponse(w, http.StatusBadRequest, "Missing 'exprs'")
		return
	}
	if len(req.Exprs) > s.securityConfig.MaxBatchSize {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Batch of %d expressions exceeds the maximum of %d", len(req.Exprs), s.securityConfig.MaxBatchSize))
		return
	}
	for _, expr := range req.Exprs {
		if err := s.checkExpr(expr); err != nil {
			s.writeParamError(w, err)
			return
		}
	}
	q := url.Values{}
	if req.Radix != 0 {
		q.Set("radix", strconv.Itoa(req.Radix))
	}
	if req.Precision != nil {
		q.Set("prec", strconv.FormatUint(uint64(*req.Precision), 10))
	}
	if req.Rounding != "" {
		q.Set("round", req.Rounding)
	}
	if req.Algo != "" {
		q.Set("algo", req.Algo)
	}
	cfg, err := s.requestConfig(q)
	if err != nil {
		s.writeParamError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	resp := BatchResponse{Results: make([]EvalResponse, len(req.Exprs))}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, expr := range req.Exprs {
		g.Go(func() error {
			resp.Results[i] = s.evaluate(gctx, cfg, expr)
			return nil
		})
	}
	_ = g.Wait()
	resp.Duration = time.Since(start).String()
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// checkExpr rejects missing and oversized expressions.
func (s *Server) checkExpr(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return ParamError{Message: "Missing 'expr' parameter", StatusCode: http.StatusBadRequest}
	}
	if len(expr) > s.securityConfig.MaxExprLength {
		return ParamError{
			Message:    fmt.Sprintf("Expression exceeds the maximum length of %d bytes", s.securityConfig.MaxExprLength),
			StatusCode: http.StatusRequestEntityTooLarge,
		}
	}
	return nil
}

// requestConfig returns the server configuration with the overrides of q
// applied and validated.
func (s *Server) requestConfig(q url.Values) (config.AppConfig, error) {
	cfg := s.cfg
	cfg.Expr = ""
	ints := []struct {
		name string
		dst  *int
	}{
		{"radix", &cfg.Radix},
		{"base", &cfg.FloatBase},
	}
	for _, p := range ints {
		if v := q.Get(p.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return cfg, ParamError{Message: fmt.Sprintf("Invalid '%s' parameter: must be an integer", p.name), StatusCode: http.StatusBadRequest}
			}
			*p.dst = n
		}
	}
	if v := q.Get("prec"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return cfg, ParamError{Message: "Invalid 'prec' parameter: must be a non-negative integer", StatusCode: http.StatusBadRequest}
		}
		cfg.Precision = uint(n)
	}
	if v := q.Get("round"); v != "" {
		cfg.Rounding = strings.ToLower(v)
	}
	if v := q.Get("algo"); v != "" {
		cfg.Algo = strings.ToLower(v)
	}
	if v := q.Get("upper"); v != "" {
		cfg.Upper = v == "1" || strings.EqualFold(v, "true")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, ParamError{Message: err.Error(), StatusCode: http.StatusBadRequest}
	}
	return cfg, nil
}

// evaluate runs expr under the strategies selected by cfg and records the
// outcome in the metrics collector.
func (s *Server) evaluate(ctx context.Context, cfg config.AppConfig, expr string) EvalResponse {
	start := time.Now()
	resp := EvalResponse{Expr: expr, Algorithm: cfg.Algo, status: http.StatusOK}

	strategies := orchestration.StrategiesFor(cfg, nil, s.logger)
	results, err := orchestration.ExecuteEvaluations(ctx, strategies, expr, orchestration.NullProgressReporter{}, io.Discard)
	var best orchestration.Result
	if err == nil {
		best, err = orchestration.CheckConsistency(expr, results)
	}
	d := time.Since(start)
	resp.Duration = d.String()

	bits := -1
	if err != nil {
		resp.Error = err.Error()
		resp.status = statusFor(err)
	} else {
		v := best.Value
		resp.Kind = v.Kind().String()
		resp.Result = v.Text(cfg.Radix, cfg.Upper)
		if v.Kind() == eval.KindFloat {
			resp.Accuracy = v.Accuracy().String()
		} else {
			resp.Radix = cfg.Radix
		}
		if b := v.BitLen(); b >= 0 {
			resp.Bits, bits = b, b
		}
	}
	s.collector.ObserveEvaluation("server", d, bits, err)
	return resp
}

// statusFor maps an evaluation error to an HTTP status.
func statusFor(err error) int {
	var (
		parseErr  *numerr.ParseError
		syntaxErr *eval.SyntaxError
	)
	if errors.As(err, &parseErr) || errors.As(err, &syntaxErr) {
		return http.StatusBadRequest
	}
	switch apperrors.ExitCode(err) {
	case apperrors.ExitErrorTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ExitErrorCanceled:
		return 499 // client closed request
	case apperrors.ExitErrorConfig:
		return http.StatusBadRequest
	case apperrors.ExitErrorArithmetic:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", err)
	}
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSONResponse(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

func (s *Server) writeParamError(w http.ResponseWriter, err error) {
	var pe ParamError
	if errors.As(err, &pe) {
		s.writeErrorResponse(w, pe.StatusCode, pe.Message)
		return
	}
	s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
}
