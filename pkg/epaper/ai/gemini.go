// Package ai implements the generation interfaces on top of the Gemini API.
package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vincent-petithory/dataurl"
	"google.golang.org/genai"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

// Client calls the Gemini API for text and image generation. It implements
// both epaper.TextGenerator and epaper.ImageGenerator.
type Client struct {
	client  *genai.Client
	timeout time.Duration
}

// Config contains the configuration for the Gemini client
type Config struct {
	APIKey  string
	Timeout time.Duration
}

// New creates a new Gemini client
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client, timeout: cfg.Timeout}, nil
}

// GenerateText sends the prompt to the configured text model and returns the
// response text.
func (c *Client) GenerateText(ctx context.Context, prompt string, cfg epaper.GenerationConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, cfg.TextModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(cfg.Temperature),
		TopK:        genai.Ptr(float32(cfg.TopK)),
		TopP:        genai.Ptr(cfg.TopP),
	})
	if err != nil {
		return "", fmt.Errorf("gemini text generation failed: %w", err)
	}

	return resp.Text(), nil
}

// GenerateImage sends the prompt to the configured image model and returns
// the first inline image part as a data URL. Returns an empty string when
// the model produced no image.
func (c *Client) GenerateImage(ctx context.Context, prompt string, cfg epaper.GenerationConfig) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, cfg.ImageModel, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(cfg.Temperature),
		TopK:        genai.Ptr(float32(cfg.TopK)),
		TopP:        genai.Ptr(cfg.TopP),
	})
	if err != nil {
		return "", fmt.Errorf("gemini image generation failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return dataurl.New(part.InlineData.Data, mime).String(), nil
			}
		}
	}

	return "", nil
}
