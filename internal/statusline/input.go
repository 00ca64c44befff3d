package statusline

import "encoding/json"

// Input is the JSON descriptor the host pipes on stdin, one per invocation.
// No field is required; unknown fields are ignored.
type Input struct {
	SessionID string        `json:"session_id"`
	Model     ModelInfo     `json:"model"`
	Workspace WorkspaceInfo `json:"workspace"`
	Cost      CostInfo      `json:"cost"`
	Context   ContextInfo   `json:"context_window"`
}

// ModelInfo carries the host's display hints for the active model.
type ModelInfo struct {
	DisplayName string `json:"display_name"`
}

// WorkspaceInfo carries the workspace paths.
type WorkspaceInfo struct {
	ProjectDir string `json:"project_dir"`
	CurrentDir string `json:"current_dir"`
}

// CostInfo carries the host's session cost counter.
type CostInfo struct {
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// ContextInfo carries context-window usage.
type ContextInfo struct {
	UsedPercentage float64 `json:"used_percentage"`
}

// ParseInput decodes the raw stdin bytes. Empty input, truncated JSON, or a
// non-object value all degrade to the zero Input — parse failure is never an
// error at this boundary. Both session key spellings seen across hosts are
// accepted.
func ParseInput(raw []byte) Input {
	var in Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return Input{}
	}
	if in.SessionID == "" {
		var alt struct {
			SessionID string `json:"sessionId"`
		}
		if err := json.Unmarshal(raw, &alt); err == nil {
			in.SessionID = alt.SessionID
		}
	}
	return in
}
