// Package gemini adapts the Google Gemini API to the assistant.Provider
// interface, declaring the storefront's two callable tools.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"modernliving-backend/internal/assistant"
	"modernliving-backend/internal/models"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Client is the production assistant.Provider backed by Gemini function
// calling.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient creates a Gemini provider. The catalog summary is embedded in
// the system instruction once at construction; the catalog never changes.
func NewClient(ctx context.Context, apiKey, modelName string, products []models.Product) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultModel
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.3)

	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(assistant.SystemInstruction(products))},
	}

	model.Tools = []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        assistant.ToolSearchProducts,
				Description: "Busca productos en la base de datos de la tienda por nombre o categoría.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"query": {
							Type:        genai.TypeString,
							Description: "Palabra clave de búsqueda (ej. altavoz, luz, gafas).",
						},
					},
					Required: []string{"query"},
				},
			},
			{
				Name:        assistant.ToolAddToCart,
				Description: "Añade un producto específico al carrito de compras del usuario.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"product_id": {
							Type:        genai.TypeString,
							Description: "El ID único del producto.",
						},
					},
					Required: []string{"product_id"},
				},
			},
		},
	}}

	return &Client{client: client, model: model}, nil
}

// Invoke sends one user message and maps the response onto the assistant's
// reply shape: function calls if any were returned, the concatenated text
// otherwise.
func (c *Client) Invoke(ctx context.Context, message string) (*assistant.Reply, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("no response candidates")
	}

	reply := &assistant.Reply{}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			switch p := part.(type) {
			case genai.FunctionCall:
				reply.ToolCalls = append(reply.ToolCalls, assistant.ToolCall{
					Name: p.Name,
					Args: p.Args,
				})
			case genai.Text:
				text.WriteString(string(p))
			}
		}
	}
	reply.Text = text.String()
	return reply, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}
