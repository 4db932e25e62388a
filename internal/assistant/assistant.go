// Package assistant implements the shopping assistant's dispatch loop: one
// user message goes out to a completion provider along with the tool
// manifest, and the returned tool invocations (or the direct text reply) are
// turned into local state changes and transcript messages.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"modernliving-backend/internal/catalog"
	"modernliving-backend/internal/models"
	"modernliving-backend/internal/store"
)

// Tool names the provider may invoke. Anything else is silently ignored.
const (
	ToolSearchProducts = "search_products"
	ToolAddToCart      = "add_to_cart"
)

// Fixed assistant lines, verbatim from the storefront.
const (
	GreetingText = "¡Hola! Soy tu asistente de Modern Living. Puedo ayudarte a encontrar el gadget perfecto o incluso añadirlo directamente a tu carrito. ¿Qué estás buscando hoy?"

	searchResultsText = "He encontrado estos productos para ti: %s. ¿Te gustaría ver alguno en detalle?"
	noResultsText     = "Lo siento, no he encontrado productos que coincidan con esa búsqueda exacta."
	addedText         = "¡Hecho! He añadido \"%s\" a tu carrito. ¿Necesitas algo más?"
	addFailedText     = "Hubo un problema al identificar el producto. ¿Podrías decirme el nombre de nuevo?"
	fallbackText      = "Estoy aquí para ayudarte con tus compras."
	providerDownText  = "Lo siento, mi conexión con la central está fallando. ¿Podemos intentarlo de nuevo?"
)

// ErrTurnInFlight is returned when a session submits a message while its
// previous assistant turn has not resolved yet.
var ErrTurnInFlight = errors.New("assistant turn already in flight")

// ToolCall is a structured request from the provider naming one of the
// local functions and supplying its arguments.
type ToolCall struct {
	Name string
	Args map[string]any
}

// Reply is what one provider invocation yields: either free text or a list
// of tool invocations. When ToolCalls is non-empty it wins over Text.
type Reply struct {
	Text      string
	ToolCalls []ToolCall
}

// Provider is the narrow capability the dispatch loop needs from a hosted
// completion API. The production implementation talks to Gemini; tests use
// a scripted fake.
type Provider interface {
	Invoke(ctx context.Context, message string) (*Reply, error)
}

// Assistant runs the per-turn dispatch loop against a session's local state.
type Assistant struct {
	provider Provider
	catalog  *catalog.Catalog
	sessions *store.SessionStore
	timeout  time.Duration
}

// New creates an assistant. The timeout bounds each provider call so a hung
// request cannot leave a session latched forever; zero disables it.
func New(provider Provider, cat *catalog.Catalog, sessions *store.SessionStore, timeout time.Duration) *Assistant {
	return &Assistant{
		provider: provider,
		catalog:  cat,
		sessions: sessions,
		timeout:  timeout,
	}
}

// HandleTurn processes one user message: appends it to the transcript,
// invokes the provider once, applies any returned tool calls in order, and
// appends the resulting assistant message(s). Provider failures resolve to
// a fixed apologetic message rather than an error; the only error returned
// is ErrTurnInFlight. The session latch is always released.
func (a *Assistant) HandleTurn(ctx context.Context, sessionID, message string) ([]models.ChatMessage, error) {
	if !a.sessions.BeginAssistantTurn(sessionID) {
		return nil, ErrTurnInFlight
	}
	defer a.sessions.EndAssistantTurn(sessionID)

	appended := []models.ChatMessage{
		a.sessions.AppendMessage(sessionID, models.RoleUser, message),
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	reply, err := a.provider.Invoke(ctx, message)
	if err != nil || reply == nil {
		appended = append(appended, a.sessions.AppendMessage(sessionID, models.RoleAssistant, providerDownText))
		return appended, nil
	}

	if len(reply.ToolCalls) > 0 {
		for _, call := range reply.ToolCalls {
			switch call.Name {
			case ToolSearchProducts:
				appended = append(appended, a.searchProducts(sessionID, call))
			case ToolAddToCart:
				appended = append(appended, a.addToCart(sessionID, call))
			}
		}
		return appended, nil
	}

	text := reply.Text
	if text == "" {
		text = fallbackText
	}
	appended = append(appended, a.sessions.AppendMessage(sessionID, models.RoleAssistant, text))
	return appended, nil
}

func (a *Assistant) searchProducts(sessionID string, call ToolCall) models.ChatMessage {
	query, _ := call.Args["query"].(string)
	results := a.catalog.Search(query)
	if len(results) == 0 {
		return a.sessions.AppendMessage(sessionID, models.RoleAssistant, noResultsText)
	}

	names := make([]string, len(results))
	for i, p := range results {
		names[i] = p.Name
	}
	text := fmt.Sprintf(searchResultsText, strings.Join(names, ", "))
	return a.sessions.AppendMessage(sessionID, models.RoleAssistant, text)
}

func (a *Assistant) addToCart(sessionID string, call ToolCall) models.ChatMessage {
	productID, _ := call.Args["product_id"].(string)
	product, ok := a.catalog.ByID(productID)
	if !ok {
		// Unknown ID is recovered locally, never surfaced as a failure.
		return a.sessions.AppendMessage(sessionID, models.RoleAssistant, addFailedText)
	}

	a.sessions.AddCartItem(sessionID, product, 1)
	return a.sessions.AppendMessage(sessionID, models.RoleAssistant, fmt.Sprintf(addedText, product.Name))
}

// SystemInstruction builds the fixed system prompt embedding the catalog
// summary (name, ID, price per product).
func SystemInstruction(products []models.Product) string {
	entries := make([]string, len(products))
	for i, p := range products {
		entries[i] = fmt.Sprintf("%s (ID: %s, Precio: $%.0f)", p.Name, p.ID, p.Price)
	}
	return fmt.Sprintf(`Eres el asistente experto de "Modern Living", una tienda de tecnología premium estilo Shopify.
Tu objetivo es guiar al usuario. Catálogo disponible: %s.
Si el usuario quiere comprar algo, usa la herramienta add_to_cart. Si busca algo, usa search_products.
Sé elegante, breve y profesional.`, strings.Join(entries, ", "))
}
