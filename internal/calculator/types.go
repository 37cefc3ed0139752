package calculator

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is the JSON response for a successful evaluation.
type EvaluateResponse struct {
	Expression string `json:"expression"`
	// Result is the formatted value, e.g. "14" or "x=0.25".
	Result   string  `json:"result"`
	Value    float64 `json:"value"`
	Variable string  `json:"variable,omitempty"`
	Notation string  `json:"notation"`
}

// BatchRequest is the JSON body for POST /calculator/batch.
type BatchRequest struct {
	Expressions []string `json:"expressions"`
}

// BatchItem records the outcome of one expression in a batch. Exactly one of
// Result or Error is set.
type BatchItem struct {
	Expression string   `json:"expression"`
	Result     string   `json:"result,omitempty"`
	Value      *float64 `json:"value,omitempty"`
	Variable   string   `json:"variable,omitempty"`
	Notation   string   `json:"notation,omitempty"`
	Error      string   `json:"error,omitempty"`
	Code       string   `json:"code,omitempty"`
}

// BatchResponse is the JSON response for POST /calculator/batch.
type BatchResponse struct {
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}
