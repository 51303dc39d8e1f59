package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSuccess_HasOnlySuccessFields(t *testing.T) {
	rec := Success("great talk", "POSITIVE", 0.98)

	require.Equal(t, StatusSuccess, rec.Status)
	require.Equal(t, "great talk", rec.InputText)
	require.Equal(t, "POSITIVE", rec.Sentiment)
	require.NotNil(t, rec.Confidence)
	require.InDelta(t, 0.98, *rec.Confidence, 1e-9)
	require.Empty(t, rec.Error)
}

func TestFailure_HasOnlyErrorFields(t *testing.T) {
	rec := Failure("great talk", errors.New("model load failed"))

	require.Equal(t, StatusError, rec.Status)
	require.Equal(t, "great talk", rec.InputText)
	require.Equal(t, "model load failed", rec.Error)
	require.Empty(t, rec.Sentiment)
	require.Nil(t, rec.Confidence)
}

func TestSuccess_JSONOmitsErrorBranch(t *testing.T) {
	data, err := json.Marshal(Success("hi", "POSITIVE", 0.5))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	require.Contains(t, fields, "sentiment")
	require.Contains(t, fields, "confidence")
	require.NotContains(t, fields, "error")
}

func TestFailure_JSONOmitsSuccessBranch(t *testing.T) {
	data, err := json.Marshal(Failure("hi", errors.New("boom")))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	require.Contains(t, fields, "error")
	require.NotContains(t, fields, "sentiment")
	require.NotContains(t, fields, "confidence")
}

func TestSuccess_ZeroConfidenceStillSerialized(t *testing.T) {
	data, err := json.Marshal(Success("meh", "NEGATIVE", 0))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	require.Contains(t, fields, "confidence")
}
