package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse(t *testing.T) {
	text := `{"output":"[{\"failure\":\"missing semicolon\",\"ruleName\":\"semicolon\",\"startPosition\":{\"line\":1,\"character\":2,\"position\":10},\"endPosition\":{\"line\":1,\"character\":3,\"position\":11}},null]","failureCount":2}`

	resp, failures, err := DecodeResponse(text)
	require.NoError(t, err)

	assert.Equal(t, 2.0, resp.FailureCount)
	require.Len(t, failures, 1)
	assert.Equal(t, "missing semicolon", failures[0].Failure)
	assert.Equal(t, "semicolon", failures[0].RuleName)
	assert.Equal(t, 10, failures[0].Offset())
	assert.Equal(t, Position{Line: 1, Character: 3, Position: 11}, *failures[0].EndPosition)
}

func TestDecodeResponse_EmptyOutput(t *testing.T) {
	resp, failures, err := DecodeResponse(`{"failureCount":0}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.FailureCount)
	assert.Empty(t, failures)

	_, failures, err = DecodeResponse(`{"output":"null","failureCount":0}`)
	require.NoError(t, err)
	assert.Empty(t, failures)
}

func TestDecodeResponse_FractionalFailureCount(t *testing.T) {
	resp, failures, err := DecodeResponse(`{"output":"[{\"failure\":\"x\"}]","failureCount":51.0}`)
	require.NoError(t, err)
	assert.Equal(t, 51.0, resp.FailureCount)
	assert.Len(t, failures, 1)

	resp, _, err = DecodeResponse(`{"output":"[]","failureCount":50.5}`)
	require.NoError(t, err)
	assert.Equal(t, 50.5, resp.FailureCount)
}

func TestDecodeResponse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"envelope", `not json`},
		{"output", `{"output":"[{","failureCount":1}`},
		{"output not a list", `{"output":"{\"failure\":\"x\"}","failureCount":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeResponse(tt.text)
			require.Error(t, err)
		})
	}
}

func TestFailure_Offset(t *testing.T) {
	var nilFailure *Failure
	assert.Equal(t, 0, nilFailure.Offset())
	assert.Equal(t, 0, (&Failure{}).Offset())
	assert.Equal(t, 7, (&Failure{StartPosition: &Position{Position: 7}}).Offset())
}
