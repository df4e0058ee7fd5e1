package server

// EvalResponse is the JSON document returned for one expression.
type EvalResponse struct {
	Expr string `json:"expr"`
	// Kind is "int", "float" or "tuple"; omitted on error.
	Kind   string `json:"kind,omitempty"`
	Result string `json:"result,omitempty"`
	// Radix is the radix of integer results.
	Radix int `json:"radix,omitempty"`
	Bits  int `json:"bits,omitempty"`
	// Accuracy reports float rounding: "Below", "Exact" or "Above".
	Accuracy  string `json:"accuracy,omitempty"`
	Algorithm string `json:"algorithm"`
	Duration  string `json:"duration"`
	Error     string `json:"error,omitempty"`

	status int
}

// BatchRequest is the body of POST /eval. Unset fields take the server
// defaults.
type BatchRequest struct {
	Exprs     []string `json:"exprs"`
	Radix     int      `json:"radix,omitempty"`
	Precision *uint    `json:"prec,omitempty"`
	Rounding  string   `json:"round,omitempty"`
	Algo      string   `json:"algo,omitempty"`
}

// BatchResponse holds one result per expression, in request order.
type BatchResponse struct {
	Results  []EvalResponse `json:"results"`
	Duration string         `json:"duration"`
}

// ErrorResponse represents the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// ParamError is a request parameter error with its HTTP status.
type ParamError struct {
	Message    string
	StatusCode int
}

func (e ParamError) Error() string {
	return e.Message
}
