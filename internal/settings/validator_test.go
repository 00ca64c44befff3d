package settings

import (
	"encoding/json"
	"testing"
)

func TestValidateFragment_Valid(t *testing.T) {
	frag := buildFragment("/usr/local/bin/swift-patterns")
	data, err := json.Marshal(frag)
	if err != nil {
		t.Fatalf("marshaling fragment: %v", err)
	}

	result, err := ValidateFragment(data)
	if err != nil {
		t.Fatalf("ValidateFragment failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("built-in fragment rejected by its own schema: %s", formatIssues(result.Issues))
	}
}

func TestValidateFragment_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			"empty command",
			`{"statusLine":{"type":"command","command":""},"hooks":{"SessionStart":[{"hooks":[{"type":"command","command":"x check-update"}]}]}}`,
		},
		{
			"wrong statusLine type",
			`{"statusLine":{"type":"script","command":"x statusline"},"hooks":{"SessionStart":[{"hooks":[{"type":"command","command":"x check-update"}]}]}}`,
		},
		{
			"missing hooks",
			`{"statusLine":{"type":"command","command":"x statusline"}}`,
		},
		{
			"empty SessionStart list",
			`{"statusLine":{"type":"command","command":"x statusline"},"hooks":{"SessionStart":[]}}`,
		},
		{
			"non-integer timeout",
			`{"statusLine":{"type":"command","command":"x statusline"},"hooks":{"SessionStart":[{"hooks":[{"type":"command","command":"x check-update","timeout":"soon"}]}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateFragment([]byte(tt.raw))
			if err != nil {
				t.Fatalf("ValidateFragment failed: %v", err)
			}
			if result.Valid {
				t.Error("expected validation to fail")
			}
			if len(result.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}

func TestValidateFragment_NotJSON(t *testing.T) {
	if _, err := ValidateFragment([]byte("{broken")); err == nil {
		t.Error("expected error for undecodable input")
	}
}
