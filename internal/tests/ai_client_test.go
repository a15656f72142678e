package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableside/internal/ai"
	"tableside/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestAIClient_GenerateIngredientsList(t *testing.T) {
	var gotAuth string
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var body struct {
			Prompt string `json:"prompt"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		gotPrompt = body.Prompt

		json.NewEncoder(w).Encode(map[string]interface{}{
			"ingredients": []domain.IngredientSuggestion{
				{Name: "Flour", Quantity: 200, Unit: "g"},
				{Name: "Cheese", Quantity: 100, Unit: "g"},
			},
		})
	}))
	defer server.Close()

	client := ai.NewClient(server.URL, "secret-key", nil)
	ingredients, err := client.GenerateIngredientsList(context.Background(), "Pizza", 4)

	assert.NoError(t, err)
	assert.Len(t, ingredients, 2)
	assert.Equal(t, "Flour", ingredients[0].Name)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Contains(t, gotPrompt, `"Pizza"`)
	assert.Contains(t, gotPrompt, "4 servings")
}

func TestAIClient_GenerateIngredientsList_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"ingredients": []domain.IngredientSuggestion{}})
	}))
	defer server.Close()

	client := ai.NewClient(server.URL, "", nil)
	_, err := client.GenerateIngredientsList(context.Background(), "Pizza", 1)
	assert.ErrorIs(t, err, ai.ErrNoStructuredOutput)
}

func TestAIClient_GenerateIngredientsList_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := ai.NewClient(server.URL, "", nil)
	_, err := client.GenerateIngredientsList(context.Background(), "Pizza", 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestAIClient_ExtractOrderFromText(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Prompt string `json:"prompt"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		gotPrompt = body.Prompt

		json.NewEncoder(w).Encode(domain.ExtractedOrder{
			OrderType:       "pickup",
			CustomerName:    "Ben",
			Items:           []domain.ExtractedItem{{Name: "Spaghetti", Quantity: 2}},
			ConfidenceScore: 0.9,
		})
	}))
	defer server.Close()

	client := ai.NewClient(server.URL, "", nil)
	extracted, err := client.ExtractOrderFromText(context.Background(), "two spaghetti for Ben to pick up")

	assert.NoError(t, err)
	assert.Equal(t, "pickup", extracted.OrderType)
	assert.Len(t, extracted.Items, 1)
	assert.True(t, strings.Contains(gotPrompt, "two spaghetti for Ben to pick up"))
}

func TestAIClient_ExtractOrderFromText_Garbage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("I am not JSON, sorry"))
	}))
	defer server.Close()

	client := ai.NewClient(server.URL, "", nil)
	_, err := client.ExtractOrderFromText(context.Background(), "hello?")
	assert.ErrorIs(t, err, ai.ErrNoStructuredOutput)
}
