package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tableside/internal/domain"
)

// ErrNoStructuredOutput is returned whenever the hosted model fails to
// produce a parseable result. Callers treat it as "nothing produced" — there
// are no partial results and no retries.
var ErrNoStructuredOutput = errors.New("model returned no structured output")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type IngredientGenerator interface {
	GenerateIngredientsList(ctx context.Context, dishName string, servings int) ([]domain.IngredientSuggestion, error)
}

type OrderExtractor interface {
	ExtractOrderFromText(ctx context.Context, transcript string) (*domain.ExtractedOrder, error)
}

// Client calls a hosted language model that answers prompts with strict
// JSON. It is deliberately dumb transport: prompt out, one decode attempt in.
type Client struct {
	Endpoint string
	APIKey   string
	client   HTTPClient
}

func NewClient(endpoint, apiKey string, client HTTPClient) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{Endpoint: endpoint, APIKey: apiKey, client: client}
}

const ingredientsPromptTemplate = `You are a chef. Generate a list of ingredients needed for the dish %q for %d servings.
For each ingredient, provide its name, quantity (as a number), and unit (e.g., "g", "ml", "pcs", "kg").
Return the output as a JSON object with a single key "ingredients" whose value is an array of
objects with "name" (string), "quantity" (number), and "unit" (string) fields.
Ensure the output strictly follows this JSON format.`

const extractOrderPromptTemplate = `You are a restaurant order-taking assistant. Extract a structured order from this call transcript:

%s

Return a JSON object with optional fields "orderType" (dine-in, delivery or pickup), "customerName",
"customerPhone", "customerAddress", "items" (array of {"name","quantity"}), "notes" and
"confidenceScore" (0 to 1). Omit anything the transcript does not state. Never invent menu items.`

func (c *Client) GenerateIngredientsList(ctx context.Context, dishName string, servings int) ([]domain.IngredientSuggestion, error) {
	var out struct {
		Ingredients []domain.IngredientSuggestion `json:"ingredients"`
	}
	prompt := fmt.Sprintf(ingredientsPromptTemplate, dishName, servings)
	if err := c.complete(ctx, prompt, &out); err != nil {
		return nil, err
	}
	if len(out.Ingredients) == 0 {
		return nil, ErrNoStructuredOutput
	}
	return out.Ingredients, nil
}

func (c *Client) ExtractOrderFromText(ctx context.Context, transcript string) (*domain.ExtractedOrder, error) {
	var out domain.ExtractedOrder
	prompt := fmt.Sprintf(extractOrderPromptTemplate, transcript)
	if err := c.complete(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) complete(ctx context.Context, prompt string, out interface{}) error {
	payload, _ := json.Marshal(map[string]string{"prompt": prompt})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("model call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model call failed: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return ErrNoStructuredOutput
	}
	return nil
}

var (
	_ IngredientGenerator = (*Client)(nil)
	_ OrderExtractor      = (*Client)(nil)
)
