package llm

// LLM is the minimal interface the advisor needs from a completion backend.
type LLM interface {
	// Chat sends one prompt and returns the model's text response.
	Chat(prompt string) (string, error)
	// Provider returns the backend name (e.g. "openai", "claude").
	Provider() string
	// Model returns the model identifier in use.
	Model() string
}
