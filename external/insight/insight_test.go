package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/flo-api/schema"
)

func reading(systolic, diastolic int) schema.Reading {
	return schema.Reading{
		Systolic:  systolic,
		Diastolic: diastolic,
		HeartRate: 72,
		Timestamp: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
	}
}

func TestPromptLimitsRecentReadings(t *testing.T) {
	recent := make([]schema.Reading, 10)
	for i := range recent {
		recent[i] = reading(120+i, 80)
	}

	p := Prompt(reading(150, 95), recent)
	assert.Contains(t, p, "150/95 mmHg")
	assert.Contains(t, p, "Stage 2")
	assert.Equal(t, MaxRecent, strings.Count(p, "\n- "))
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req GeminiRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Len(t, req.Contents, 1)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Looking steady.  "}]}}]}`))
	}))
	defer server.Close()

	c := NewGeminiClient(server.Client(), server.URL, "secret", "test-model")
	text, err := c.Generate(context.Background(), reading(118, 76), nil)
	require.NoError(t, err)
	assert.Equal(t, "Looking steady.", text)
}

func TestGenerateEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	c := NewGeminiClient(server.Client(), server.URL, "secret", "test-model")
	_, err := c.Generate(context.Background(), reading(118, 76), nil)
	assert.Equal(t, ErrEmptyCompletion, err)
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	c := NewGeminiClient(server.Client(), server.URL, "secret", "test-model")
	_, err := c.Generate(context.Background(), reading(118, 76), nil)
	assert.Error(t, err)
	assert.NotEqual(t, ErrEmptyCompletion, err)
}
