package flexdoc

// ActionType discriminates tap actions.
type ActionType string

const (
	ActionURI     ActionType = "uri"
	ActionMessage ActionType = "message"
	// ActionShare is resolved at compile time into a deep link that
	// re-enters the share flow for the published document.
	ActionShare ActionType = "share"
)

// Action is a tagged union over uri / message / share.
type Action struct {
	Type ActionType `json:"type"`
	URI  string     `json:"uri,omitempty"`  // uri: absolute link
	Text string     `json:"text,omitempty"` // message: canned reply text
}
