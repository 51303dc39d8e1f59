package classifier

import (
	"context"
	"fmt"

	"github.com/spacesedan/sentijob/config"
)

// Prediction is one label with its confidence, in [0,1].
type Prediction struct {
	Label      string
	Confidence float64
}

// Classifier turns free text into a polarity label. Implementations must
// return a ClassificationError rather than panic: the caller converts it
// into the error branch of the output record.
type Classifier interface {
	Classify(ctx context.Context, text string) (Prediction, error)
}

// ClassificationError marks a failure inside a sentiment backend. It is
// the only error kind allowed to cross the adapter boundary.
type ClassificationError struct {
	Backend string
	Err     error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s classification failed: %v", e.Backend, e.Err)
}

func (e *ClassificationError) Unwrap() error { return e.Err }

func classificationErr(backend string, err error) error {
	return &ClassificationError{Backend: backend, Err: err}
}

// ForBackend builds the classifier named by cfg.Backend. Construction
// failures (model download, session init) are classification errors too,
// so the job still writes an error record for them.
func ForBackend(cfg config.Config) (Classifier, error) {
	switch cfg.Backend {
	case config.BackendVader:
		return NewVader(), nil
	case config.BackendOpenAI:
		return NewOpenAI(cfg.OpenAIKey)
	default:
		return NewTransformer(cfg.ModelDir)
	}
}
