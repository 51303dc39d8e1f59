package job

import (
	"context"
	"log/slog"

	"github.com/spacesedan/sentijob/internal/classifier"
	"github.com/spacesedan/sentijob/internal/models"
	"github.com/spacesedan/sentijob/internal/output"
)

// Run classifies one input and writes the record. Classification
// failures end up inside the record; only the filesystem write can
// return an error.
func Run(ctx context.Context, clf classifier.Classifier, w *output.Writer, inputText string) error {
	var rec models.Result

	pred, err := clf.Classify(ctx, inputText)
	if err != nil {
		slog.Error("[Job] Classification failed",
			slog.String("error", err.Error()))
		rec = models.Failure(inputText, err)
	} else {
		slog.Info("[Job] Classification complete",
			slog.String("sentiment", pred.Label),
			slog.Float64("confidence", pred.Confidence))
		rec = models.Success(inputText, pred.Label, pred.Confidence)
	}

	return w.Write(rec)
}
