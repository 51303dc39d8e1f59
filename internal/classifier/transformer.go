package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/knights-analytics/hugot"

	"github.com/spacesedan/sentijob/config"
)

const sentimentModel = "KnightsAnalytics/distilbert-base-uncased-finetuned-sst-2-english"

// Transformer runs the DistilBERT SST-2 classifier through an ONNX
// Runtime session on CPU. The model is fetched into the cache dir on
// first use and reused afterwards.
type Transformer struct {
	modelPath string
}

func NewTransformer(modelDir string) (*Transformer, error) {
	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		return nil, classificationErr(config.BackendTransformer,
			fmt.Errorf("failed to create model directory: %w", err))
	}

	modelPath, err := hugot.DownloadModel(sentimentModel, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		return nil, classificationErr(config.BackendTransformer,
			fmt.Errorf("failed to download model: %w", err))
	}
	slog.Info("[Transformer] Model ready", slog.String("path", modelPath))

	return &Transformer{modelPath: modelPath}, nil
}

func (t *Transformer) Classify(_ context.Context, text string) (Prediction, error) {
	session, err := hugot.NewORTSession()
	if err != nil {
		return Prediction{}, classificationErr(config.BackendTransformer,
			fmt.Errorf("failed to initialize ONNX session: %w", err))
	}
	defer session.Destroy()

	pipeline, err := hugot.NewPipeline(session, hugot.TextClassificationConfig{
		ModelPath: t.modelPath,
		Name:      "sentimentPipeline",
	})
	if err != nil {
		return Prediction{}, classificationErr(config.BackendTransformer,
			fmt.Errorf("failed to initialize pipeline: %w", err))
	}

	output, err := pipeline.RunPipeline([]string{text})
	if err != nil {
		return Prediction{}, classificationErr(config.BackendTransformer, err)
	}

	if len(output.ClassificationOutputs) == 0 || len(output.ClassificationOutputs[0]) == 0 {
		return Prediction{}, classificationErr(config.BackendTransformer,
			fmt.Errorf("pipeline returned no classifications"))
	}

	best := output.ClassificationOutputs[0][0]
	return Prediction{
		Label:      best.Label,
		Confidence: float64(best.Score),
	}, nil
}
