package models

// Status values for a Result.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the single record the job writes per invocation. Exactly one
// of {Sentiment, Confidence} or {Error} is populated, gated by Status.
type Result struct {
	InputText  string   `json:"input_text"`
	Sentiment  string   `json:"sentiment,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
	Error      string   `json:"error,omitempty"`
	Status     string   `json:"status"`
}

// Success builds the record for a completed classification.
func Success(input, label string, confidence float64) Result {
	return Result{
		InputText:  input,
		Sentiment:  label,
		Confidence: &confidence,
		Status:     StatusSuccess,
	}
}

// Failure builds the record for a classification that could not run.
func Failure(input string, err error) Result {
	return Result{
		InputText: input,
		Error:     err.Error(),
		Status:    StatusError,
	}
}
