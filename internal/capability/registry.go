package capability

// ID identifies one Language Model capability: a prompt template plus the
// structured output contract its caller decodes against. The pipeline never
// branches on prompt content, only on the structured decision it gets back.
type ID string

const (
	Route         ID = "route"
	Translation   ID = "translation"
	Vocabulary    ID = "vocabulary"
	Pronunciation ID = "pronunciation"
	RandomPhrase  ID = "random_phrase"
)

// Template is a declared capability invocation: the prompt skeleton and the
// generation parameters used for it. The template is a fmt format string;
// callers supply the positional inputs documented per capability.
type Template struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Registry maps capability ids to their templates.
type Registry struct {
	templates map[ID]Template
}

// NewRegistry builds the registry with the built-in capability set.
func NewRegistry() *Registry {
	return &Registry{
		templates: map[ID]Template{
			Route:         {Prompt: PromptRoute, Temperature: 0.1, MaxTokens: 512},
			Translation:   {Prompt: PromptTranslation, Temperature: 0.4, MaxTokens: 1024},
			Vocabulary:    {Prompt: PromptVocabulary, Temperature: 0.6, MaxTokens: 1024},
			Pronunciation: {Prompt: PromptPronunciation, Temperature: 0.3, MaxTokens: 1024},
			RandomPhrase:  {Prompt: PromptRandomPhrase, Temperature: 0.8, MaxTokens: 512},
		},
	}
}

// Get returns the template registered for id.
func (r *Registry) Get(id ID) (Template, bool) {
	tpl, ok := r.templates[id]
	return tpl, ok
}
