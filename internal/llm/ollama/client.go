package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/danielolaitan/invoice-agent/constants"
	"github.com/danielolaitan/invoice-agent/internal/llm"
)

// Classify implements llm.ItemClassifier over the Ollama generate API. The
// model is asked for a bare JSON array; anything around it is stripped before
// schema validation.
func (c *Client) Classify(ctx context.Context, descriptions []string) ([]llm.ItemCategory, error) {
	if len(descriptions) == 0 {
		return nil, nil
	}
	start := time.Now()

	allowed := constants.AsStringSlice()
	body := map[string]any{
		"model":  c.cfg.Model,
		"system": llm.BuildSystemPrompt(allowed),
		"prompt": llm.BuildUserPrompt(descriptions),
		"stream": false,
		"options": map[string]any{
			"temperature": c.cfg.Temperature,
			"num_predict": c.cfg.NumPredict,
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, nil, c.logger)
	if err != nil {
		c.logger.Error("classify.http_error",
			"model", c.cfg.Model,
			"items", len(descriptions),
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var gen struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, fmt.Errorf("decode ollama response: %w", err)
	}

	content, err := extractJSONArray(gen.Response)
	if err != nil {
		c.logger.Warn("classify.unparsable_response",
			"model", c.cfg.Model,
			"response_head", head(gen.Response, 200),
		)
		return nil, err
	}

	// Validate shape only; off-enum categories collapse to Other downstream
	// rather than rejecting the whole response.
	if err := llm.ValidateJSONAgainstSchema(llm.BuildCategoriesJSONSchema(nil), content); err != nil {
		c.logger.Warn("classify.schema_validation_failed", "model", c.cfg.Model, "error", err)
		return nil, err
	}

	var categories []llm.ItemCategory
	if err := json.Unmarshal(content, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	c.logger.Info("classify.ok",
		"model", c.cfg.Model,
		"items", len(descriptions),
		"classified", len(categories),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return categories, nil
}

// extractJSONArray pulls the outermost JSON array out of model chatter.
func extractJSONArray(s string) ([]byte, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in response")
	}
	return []byte(s[start : end+1]), nil
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
