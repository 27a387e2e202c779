package testutil

// WithStandardCatalog adds a small model catalog spanning several providers.
// Two records ("llama" disabled, "legacy" unavailable) exercise the
// availability gate.
func (b *Builder) WithStandardCatalog() *Builder {
	return b.
		WithModel("sonnet",
			Model("claude-sonnet-4-5"), Parent("Anthropic"), Family("claude"), Series("claude45"),
			URL("https://api.anthropic.com/v1"), APIKey("ANTHROPIC_API_KEY"),
			ContextWindow(200000), MaxOutputTokens(64000), Vision(1)).
		WithModel("haiku",
			Model("claude-haiku-3-5"), Parent("Anthropic"), Family("claude"), Series("claude35"),
			URL("https://api.anthropic.com/v1"), APIKey("ANTHROPIC_API_KEY"),
			ContextWindow(200000), MaxOutputTokens(8192), Vision(1)).
		WithModel("gpt4o",
			Model("gpt-4o"), Parent("OpenAI"), Family("gpt"), Series("gpt4"),
			URL("https://api.openai.com/v1"), APIKey("OPENAI_API_KEY"),
			ContextWindow(128000), MaxOutputTokens(16384), Vision(1)).
		WithModel("o3",
			Model("o3"), Parent("OpenAI"), Family("o"), Series("o3"),
			URL("https://api.openai.com/v1"), APIKey("OPENAI_API_KEY"),
			ContextWindow(200000), MaxOutputTokens(100000), Vision(1), Available(3)).
		WithModel("gemini",
			Model("gemini-2.0-flash"), Parent("Google"), Family("gemini"), Series("gemini2"),
			URL("https://generativelanguage.googleapis.com/v1beta"), APIKey("GOOGLE_API_KEY"),
			ContextWindow(1048576), MaxOutputTokens(8192), Vision(1)).
		WithModel("llama",
			Model("llama3.1:8b"), Parent("Ollama"), Family("llama"), Series("llama3"),
			URL("http://localhost:11434"), APIKey("OLLAMA_API_KEY"),
			ContextWindow(8192), MaxOutputTokens(4096), Enabled(0)).
		WithModel("legacy",
			Model("gpt-3.5-turbo"), Parent("OpenAI"), Family("gpt"), Series("gpt35"),
			URL("https://api.openai.com/v1"), APIKey("OPENAI_API_KEY"),
			ContextWindow(16385), MaxOutputTokens(4096), Available(0), Enabled(0))
}

// WithAgentRoster adds a few agent records across categories.
func (b *Builder) WithAgentRoster() *Builder {
	return b.
		WithAgent("leet",
			Category("Specialist"), Model("sonnet"), MaxTokens(8000), Temperature(0.1),
			SystemPrompt("You are Leet, an expert programmer."), Monospace(true)).
		WithAgent("summary",
			Category("Utility"), Model("haiku"), MaxTokens(2000), Temperature(0.3),
			SystemPrompt("Summarise the given text.")).
		WithAgent("chatty",
			Category("General"), Model("gpt4o"))
}
