package testutil

type attrData struct {
	key   string
	value any
}

// recordData holds the attributes for one record, in insertion order.
type recordData struct {
	id    string
	attrs []attrData
}

func (r *recordData) set(key string, value any) {
	r.attrs = append(r.attrs, attrData{key, value})
}

// defaultModel returns model attributes that pass the models lint profile.
// Integer values are int64 to match what the JSON loader produces.
func defaultModel(id string) recordData {
	r := recordData{id: id}
	r.set("model", id)
	r.set("alias", id)
	r.set("parent", "Test")
	r.set("model_category", "LLM")
	r.set("family", "test")
	r.set("series", "test1")
	r.set("url", "https://api.example.com")
	r.set("apikey", "TEST_API_KEY")
	r.set("context_window", int64(128000))
	r.set("max_output_tokens", int64(4096))
	r.set("vision", int64(0))
	r.set("available", int64(9))
	r.set("enabled", int64(1))
	return r
}

// defaultAgent returns agent attributes that pass the agents lint profile.
func defaultAgent(id string) recordData {
	r := recordData{id: id}
	r.set("category", "General")
	r.set("model", "sonnet")
	r.set("systemprompt", "You are a helpful assistant.")
	r.set("max_tokens", int64(4000))
	r.set("temperature", 0.7)
	return r
}

// RecordOption configures a record during builder setup.
type RecordOption func(*recordData)

// Attr sets an arbitrary attribute. Later values for the same key win while
// the key keeps its original position.
func Attr(key string, value any) RecordOption {
	return func(r *recordData) { r.set(key, value) }
}

// Model sets the model attribute.
func Model(s string) RecordOption {
	return func(r *recordData) { r.set("model", s) }
}

// Alias sets the alias attribute.
func Alias(s string) RecordOption {
	return func(r *recordData) { r.set("alias", s) }
}

// Parent sets the parent attribute.
func Parent(s string) RecordOption {
	return func(r *recordData) { r.set("parent", s) }
}

// ModelCategory sets the model_category attribute.
func ModelCategory(s string) RecordOption {
	return func(r *recordData) { r.set("model_category", s) }
}

// Family sets the family attribute.
func Family(s string) RecordOption {
	return func(r *recordData) { r.set("family", s) }
}

// Series sets the series attribute.
func Series(s string) RecordOption {
	return func(r *recordData) { r.set("series", s) }
}

// URL sets the url attribute.
func URL(s string) RecordOption {
	return func(r *recordData) { r.set("url", s) }
}

// APIKey sets the apikey attribute.
func APIKey(s string) RecordOption {
	return func(r *recordData) { r.set("apikey", s) }
}

// ContextWindow sets the context_window attribute.
func ContextWindow(n int) RecordOption {
	return func(r *recordData) { r.set("context_window", int64(n)) }
}

// MaxOutputTokens sets the max_output_tokens attribute.
func MaxOutputTokens(n int) RecordOption {
	return func(r *recordData) { r.set("max_output_tokens", int64(n)) }
}

// Vision sets the vision attribute.
func Vision(n int) RecordOption {
	return func(r *recordData) { r.set("vision", int64(n)) }
}

// Available sets the available attribute (0-9).
func Available(n int) RecordOption {
	return func(r *recordData) { r.set("available", int64(n)) }
}

// Enabled sets the enabled attribute (0-9).
func Enabled(n int) RecordOption {
	return func(r *recordData) { r.set("enabled", int64(n)) }
}

// Category sets the category attribute used by agent records.
func Category(s string) RecordOption {
	return func(r *recordData) { r.set("category", s) }
}

// SystemPrompt sets the systemprompt attribute.
func SystemPrompt(s string) RecordOption {
	return func(r *recordData) { r.set("systemprompt", s) }
}

// MaxTokens sets the max_tokens attribute.
func MaxTokens(n int) RecordOption {
	return func(r *recordData) { r.set("max_tokens", int64(n)) }
}

// Temperature sets the temperature attribute.
func Temperature(f float64) RecordOption {
	return func(r *recordData) { r.set("temperature", f) }
}

// Knowledgebase sets the knowledgebase attribute.
func Knowledgebase(s string) RecordOption {
	return func(r *recordData) { r.set("knowledgebase", s) }
}

// Monospace sets the monospace attribute.
func Monospace(b bool) RecordOption {
	return func(r *recordData) { r.set("monospace", b) }
}
