package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/logger"
	"growth-roadmap-backend/internal/metrics"
	"growth-roadmap-backend/internal/progression"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	opGenerateRoadmap = "generate roadmap"
	opRegeneratePhase = "regenerate phase"

	roadmapPath    = "/v1/roadmaps"
	regeneratePath = "/v1/phases/regenerate"

	maxResponseBytes = 4 << 20
)

// Config holds connection settings for the content generator
type Config struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// Client is the HTTP implementation of ContentGenerator
type Client struct {
	baseURL    string
	httpClient *http.Client
	validator  *validator.Validate
}

type roadmapResponse struct {
	Phases []GeneratedPhase `json:"phases" validate:"dive"`
}

type phaseContentResponse struct {
	Objectives []models.Objective     `json:"objectives"`
	Checklist  []models.ChecklistItem `json:"checklist"`
	Playbook   json.RawMessage        `json:"playbook"`
}

// NewClient creates a generator client. When a token URL is configured the
// client authenticates with the OAuth2 client credentials grant.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, apperrors.ErrGeneratorNotConfigured
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	base := &http.Client{Timeout: cfg.Timeout}
	httpClient := base
	if cfg.TokenURL != "" {
		cc := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		httpClient = cc.Client(ctx)
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		validator:  validator.New(),
	}, nil
}

// GeneratePhases requests a complete roadmap. Phase numbers must be unique.
func (c *Client) GeneratePhases(ctx context.Context, req RoadmapRequest) ([]GeneratedPhase, error) {
	timer := time.Now()
	phases, err := c.generatePhases(ctx, req)
	c.observe(opGenerateRoadmap, timer, err)
	if err != nil {
		logger.WithContext(ctx).WithField("organization_id", req.OrganizationID).
			Errorf("Roadmap generation failed: %v", err)
		return nil, apperrors.NewGenerationFailure(opGenerateRoadmap, err)
	}
	return phases, nil
}

func (c *Client) generatePhases(ctx context.Context, req RoadmapRequest) ([]GeneratedPhase, error) {
	var resp roadmapResponse
	if err := c.post(ctx, roadmapPath, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Phases) == 0 {
		return nil, apperrors.ErrEmptyRoadmap
	}
	if err := c.validator.Struct(resp); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedContent, err)
	}

	seen := make(map[int]bool, len(resp.Phases))
	for _, p := range resp.Phases {
		if seen[p.PhaseNumber] {
			return nil, fmt.Errorf("%w: duplicate phase number %d", apperrors.ErrMalformedContent, p.PhaseNumber)
		}
		seen[p.PhaseNumber] = true
	}
	return resp.Phases, nil
}

// RegeneratePhase requests fresh content for a single phase
func (c *Client) RegeneratePhase(ctx context.Context, req PhaseRequest) (progression.Content, error) {
	timer := time.Now()
	content, err := c.regeneratePhase(ctx, req)
	c.observe(opRegeneratePhase, timer, err)
	if err != nil {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"organization_id": req.OrganizationID,
			"phase_number":    req.PhaseNumber,
		}).Errorf("Phase regeneration failed: %v", err)
		return progression.Content{}, apperrors.NewGenerationFailure(opRegeneratePhase, err)
	}
	return content, nil
}

func (c *Client) regeneratePhase(ctx context.Context, req PhaseRequest) (progression.Content, error) {
	var resp phaseContentResponse
	if err := c.post(ctx, regeneratePath, req, &resp); err != nil {
		return progression.Content{}, err
	}

	phase := GeneratedPhase{
		PhaseNumber: req.PhaseNumber,
		PhaseName:   req.PhaseName,
		Objectives:  resp.Objectives,
		Checklist:   resp.Checklist,
		Playbook:    resp.Playbook,
	}
	if len(phase.Checklist) == 0 && len(phase.Objectives) == 0 {
		return progression.Content{}, fmt.Errorf("%w: empty phase content", apperrors.ErrMalformedContent)
	}
	if err := c.validator.Struct(phase); err != nil {
		return progression.Content{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedContent, err)
	}
	return phase.Content(), nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("generator returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedContent, err)
	}
	return nil
}

func (c *Client) observe(op string, start time.Time, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultFailure
	}
	metrics.GeneratorDuration.WithLabelValues(op, result).Observe(time.Since(start).Seconds())
}
