package job

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentijob/internal/classifier"
	"github.com/spacesedan/sentijob/internal/models"
	"github.com/spacesedan/sentijob/internal/output"
)

type stubClassifier struct {
	pred classifier.Prediction
	err  error
}

func (s stubClassifier) Classify(context.Context, string) (classifier.Prediction, error) {
	return s.pred, s.err
}

func readRecord(t *testing.T, path string) models.Result {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec models.Result
	require.NoError(t, json.Unmarshal(data, &rec), "output must be valid JSON")
	return rec
}

func TestRun_WritesSuccessRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	clf := stubClassifier{pred: classifier.Prediction{Label: "POSITIVE", Confidence: 0.997}}

	err := Run(context.Background(), clf, output.NewWriter(path), "I love this amazing workshop!")
	require.NoError(t, err)

	rec := readRecord(t, path)
	require.Equal(t, models.StatusSuccess, rec.Status)
	require.Equal(t, "I love this amazing workshop!", rec.InputText)
	require.Equal(t, "POSITIVE", rec.Sentiment)
	require.NotNil(t, rec.Confidence)
	require.Greater(t, *rec.Confidence, 0.99)
	require.Empty(t, rec.Error)
}

func TestRun_ClassifierFailureIsAbsorbedIntoRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	clf := stubClassifier{err: errors.New("model exploded")}

	err := Run(context.Background(), clf, output.NewWriter(path), "some input")
	require.NoError(t, err, "classification failures must not surface as process errors")

	rec := readRecord(t, path)
	require.Equal(t, models.StatusError, rec.Status)
	require.Equal(t, "some input", rec.InputText)
	require.Contains(t, rec.Error, "model exploded")
	require.Empty(t, rec.Sentiment)
	require.Nil(t, rec.Confidence)
}

func TestRun_EmptyInputStillProducesValidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")
	clf := stubClassifier{pred: classifier.Prediction{Label: "NEGATIVE", Confidence: 0.51}}

	err := Run(context.Background(), clf, output.NewWriter(path), "")
	require.NoError(t, err)

	rec := readRecord(t, path)
	require.Equal(t, models.StatusSuccess, rec.Status)
	require.Equal(t, "", rec.InputText)
}

func TestRun_WriteFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "outputs")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0o644))

	clf := stubClassifier{pred: classifier.Prediction{Label: "POSITIVE", Confidence: 0.9}}
	err := Run(context.Background(), clf, output.NewWriter(filepath.Join(blocker, "result.json")), "hi")
	require.Error(t, err)
}
