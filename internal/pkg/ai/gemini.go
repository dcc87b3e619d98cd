// internal/pkg/ai/gemini.go
package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/fifi-bags/storefront-backend/internal/config"
	"github.com/fifi-bags/storefront-backend/internal/domain/catalog"
)

// fallbackEmptyReply covers the rare case of a successful call with no text
const fallbackEmptyReply = "I'm so sorry, I got a little tangled in some thread! Could you say that again? 🍂"

// Client wraps the Gemini API as the shop's conversational persona.
// The system instruction is rebuilt per call so the model always sees the
// live inventory.
type Client struct {
	genai       *genai.Client
	model       string
	temperature float32
}

// NewClient creates a Gemini-backed chat client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Assistant.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		genai:       client,
		model:       cfg.Assistant.Model,
		temperature: float32(cfg.Assistant.Temperature),
	}, nil
}

// Reply sends one conversational turn with the current catalog and an
// optional inline image, returning the model's reply text
func (c *Client) Reply(ctx context.Context, message string, products []catalog.Product, imageData string) (string, error) {
	parts := []*genai.Part{}

	if imageData != "" {
		data, mimeType, err := decodeImage(imageData)
		if err != nil {
			return "", fmt.Errorf("failed to decode chat image: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(data, mimeType))
	}

	parts = append(parts, genai.NewPartFromText(message))

	result, err := c.genai.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(SystemInstruction(products), genai.RoleUser),
			Temperature:       genai.Ptr(c.temperature),
		})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return fallbackEmptyReply, nil
	}
	return text, nil
}

// Disabled is a stand-in chat client used when no API key is configured.
// Every turn fails, so the assistant answers with its fixed apology.
type Disabled struct{}

// Reply always reports the chat service as unconfigured
func (Disabled) Reply(_ context.Context, _ string, _ []catalog.Product, _ string) (string, error) {
	return "", fmt.Errorf("chat service is not configured")
}

// SystemInstruction builds the persona prompt around the current inventory
func SystemInstruction(products []catalog.Product) string {
	var inventory strings.Builder
	for _, p := range products {
		status := "In Stock"
		if p.SoldOut {
			status = "SOLD OUT"
		}
		fmt.Fprintf(&inventory, "- %s ($%g) [%s]: %s\n", p.Name, p.Price, status, p.Description)
	}

	return fmt.Sprintf(`You are Fifi, the passionate owner and creator of FIFI-Bags.
Your personality is warm, grounded, and rustic. You absolutely LOVE earth tones, especially rich browns, beiges, and terracottas.
You sell handmade bags.
You are chatting with a customer on your website.

Here is your current product inventory:
%s
Key behaviors:
1. Always be polite and welcoming. Use emojis like 🍂, 👜, 🤎, ✨ occasionally.
2. If a customer asks about a specific bag, give them details. If it is marked [SOLD OUT], apologize and suggest a similar item or a custom order.
3. If they ask for a custom order, tell them you accept custom leather/fabric requests (especially in earth tones!) and the lead time is usually 2 weeks.
4. If the user uploads an image, analyze it for style or color inspiration and suggest one of your bags that matches the vibe.
5. Keep responses concise (under 3 sentences usually) unless explaining a detailed process.
6. Do not make up products that are not in the inventory list provided above.
`, inventory.String())
}

// decodeImage accepts either a bare base64 payload or a full data URI and
// returns the raw bytes plus the declared MIME type (image/jpeg when absent)
func decodeImage(imageData string) ([]byte, string, error) {
	mimeType := "image/jpeg"
	payload := imageData

	if strings.HasPrefix(imageData, "data:") {
		header, rest, ok := strings.Cut(imageData, ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		payload = rest
		if mt, found := strings.CutPrefix(header, "data:"); found {
			mt, _, _ = strings.Cut(mt, ";")
			if mt != "" {
				mimeType = mt
			}
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return data, mimeType, nil
}
