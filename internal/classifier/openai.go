package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/spacesedan/sentijob/config"
)

const sentimentPrompt = `Classify the sentiment of the user's text as POSITIVE or NEGATIVE.

### STRICT OUTPUT FORMAT
You MUST return only valid JSON, formatted exactly as follows:
{"sentiment": "POSITIVE", "confidence": 0.99}

### REQUIREMENTS
- "sentiment" is exactly one of POSITIVE or NEGATIVE.
- "confidence" is a number between 0 and 1.
- No Markdown formatting (no triple backticks, no explanations).
- No extra text before or after the JSON output.`

// OpenAI asks a chat model for the verdict. Used when the host cannot
// run the ONNX model locally and a key is available.
type OpenAI struct {
	client *openai.Client
}

func NewOpenAI(apiKey string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, classificationErr(config.BackendOpenAI,
			fmt.Errorf("missing OPENAI_API_KEY in environment"))
	}
	return &OpenAI{client: openai.NewClient(option.WithAPIKey(apiKey))}, nil
}

func (o *OpenAI) Classify(ctx context.Context, text string) (Prediction, error) {
	chatCompletion, err := o.client.Chat.Completions.New(ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(sentimentPrompt),
				openai.UserMessage(text),
			}),
			Model:       openai.F(openai.ChatModelGPT4oMini),
			Temperature: openai.Float(0),
		})
	if err != nil {
		return Prediction{}, classificationErr(config.BackendOpenAI, err)
	}

	if len(chatCompletion.Choices) == 0 {
		return Prediction{}, classificationErr(config.BackendOpenAI,
			fmt.Errorf("empty response from model"))
	}

	var verdict struct {
		Sentiment  string  `json:"sentiment"`
		Confidence float64 `json:"confidence"`
	}
	raw := cleanResponse(chatCompletion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return Prediction{}, classificationErr(config.BackendOpenAI,
			fmt.Errorf("failed to parse model response: %w", err))
	}

	return Prediction{Label: verdict.Sentiment, Confidence: verdict.Confidence}, nil
}

// cleanResponse strips the code fences some models wrap JSON in despite
// instructions.
func cleanResponse(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}
