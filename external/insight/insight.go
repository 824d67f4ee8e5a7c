package insight

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/flo-api/bp"
	"github.com/bitmark-inc/flo-api/schema"
)

const (
	insightLogPrefix = "insight"
	DefaultEndpoint  = "https://generativelanguage.googleapis.com"
	DefaultModel     = "gemini-1.5-flash"
	MaxRecent        = 7
)

var ErrEmptyCompletion = errors.New("empty completion")

//go:generate mockgen -source=insight.go -destination=../../mocks/insight.go -package=mocks -mock_names=Client=MockInsightClient

// Client generates a short wellness text about a reading
type Client interface {
	Generate(ctx context.Context, reading schema.Reading, recent []schema.Reading) (string, error)
}

type GeminiRequest struct {
	Contents []Content `json:"contents"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GeminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type GeminiClient struct {
	client *resty.Client
	apiKey string
	model  string
}

func NewGeminiClient(httpClient *http.Client, endpoint, apiKey, model string) *GeminiClient {
	var c *resty.Client
	if httpClient != nil {
		c = resty.NewWithClient(httpClient)
	} else {
		c = resty.New()
	}

	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if model == "" {
		model = DefaultModel
	}

	c.SetBaseURL(endpoint).
		SetTimeout(30*time.Second).
		SetRetryCount(1).
		SetHeader("Content-Type", "application/json")

	return &GeminiClient{
		client: c,
		apiKey: apiKey,
		model:  model,
	}
}

func describe(r schema.Reading) string {
	return fmt.Sprintf("%s: %d/%d mmHg, heart rate %d bpm (%s)",
		r.Timestamp.UTC().Format(time.RFC3339), r.Systolic, r.Diastolic, r.HeartRate,
		bp.Classify(r.Systolic, r.Diastolic).Label)
}

// Prompt builds the prompt of a reading and at most seven recent readings
func Prompt(reading schema.Reading, recent []schema.Reading) string {
	var b strings.Builder
	b.WriteString("You are a friendly wellness assistant. Write two or three short sentences about the latest blood pressure reading. ")
	b.WriteString("Do not give a diagnosis and suggest talking to a clinician when values are high.\n\n")
	b.WriteString("Latest reading: ")
	b.WriteString(describe(reading))
	b.WriteString("\n")

	if len(recent) > MaxRecent {
		recent = recent[:MaxRecent]
	}
	if len(recent) > 0 {
		b.WriteString("Recent readings:\n")
		for _, r := range recent {
			b.WriteString("- ")
			b.WriteString(describe(r))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (g *GeminiClient) Generate(ctx context.Context, reading schema.Reading, recent []schema.Reading) (string, error) {
	body := GeminiRequest{
		Contents: []Content{
			{Parts: []Part{{Text: Prompt(reading, recent)}}},
		},
	}

	var result GeminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return "", fmt.Errorf("generate insight: %w", err)
	}

	if resp.IsError() {
		log.WithField("prefix", insightLogPrefix).WithField("status", resp.StatusCode()).Error("insight generation rejected")
		return "", fmt.Errorf("generate insight: unexpected status %d", resp.StatusCode())
	}

	var parts []string
	for _, c := range result.Candidates {
		for _, p := range c.Content.Parts {
			if t := strings.TrimSpace(p.Text); t != "" {
				parts = append(parts, t)
			}
		}
		if len(parts) > 0 {
			break
		}
	}

	if len(parts) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.Join(parts, "\n"), nil
}
