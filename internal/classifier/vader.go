package classifier

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// Vader scores text with the VADER lexicon. No model files, no network;
// the fallback for hosts without an ONNX runtime.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) Classify(_ context.Context, text string) (Prediction, error) {
	sentiment := v.analyzer.PolarityScores(plainText(text))
	score := sentiment.Compound

	label := "POSITIVE"
	if score < 0 {
		label = "NEGATIVE"
	}

	return Prediction{
		Label:      label,
		Confidence: math.Min(math.Abs(score), 1.0),
	}, nil
}

// plainText strips links and renders markdown so URLs and formatting do
// not skew the lexicon scores. Links go first; rendering would bury
// their text inside href attributes.
func plainText(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	input = urlPattern.ReplaceAllString(input, "")

	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	return strings.Join(strings.Fields(string(output)), " ")
}
