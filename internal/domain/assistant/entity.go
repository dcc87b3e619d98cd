// internal/domain/assistant/entity.go
package assistant

// Role identifies the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "model"
)

// Message is one turn in the chat transcript. Transcripts are append-only
// and session-only; they are never persisted.
type Message struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// Greeting is the fixed first message of every transcript
const Greeting = "Hi there! I'm Fifi's AI assistant. I love chatting about our handmade bags! Ask me anything or upload a photo for inspiration! 🌸"

// FallbackUnavailable is shown when the chat service fails entirely
const FallbackUnavailable = "Oh no! My creative brain is taking a quick nap. Please try again in a moment! 💤"
