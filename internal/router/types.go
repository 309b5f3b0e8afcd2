package router

// Agent names a specialist capability the router can dispatch to.
type Agent string

const (
	AgentTranslation Agent = "translation"
	AgentVocabulary  Agent = "vocabulary"
)

// RoutingDecision is the structured classification of one user message.
// Agent is present iff ShouldRespond is true; RejectionReason may be empty
// even on rejection (treated as a generic rejection downstream).
type RoutingDecision struct {
	ShouldRespond   bool   `json:"should_respond"`
	Agent           Agent  `json:"agent,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	UserRequest     string `json:"user_request"`
	ContextForAgent string `json:"context_for_agent"`
}

// ClassifyInput carries the message plus the context the router is allowed
// to see. All fields but Message are optional.
type ClassifyInput struct {
	Message          string
	TargetLanguage   string
	UserContext      string
	FormattedHistory string
}
