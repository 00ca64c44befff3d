package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/efremidze/swift-patterns-skill/internal/branding"
)

// Hook event name in the host's settings file.
const sessionStartEvent = "SessionStart"

// StatusLineCommand and CheckUpdateCommand are the entries written into the
// host settings, resolved against the given binary path.
func StatusLineCommand(binary string) string { return binary + " statusline" }
func CheckUpdateCommand(binary string) string {
	return binary + " check-update"
}

// commandEntry is a single hook command as the host expects it.
type commandEntry struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

// matcherEntry groups hook commands under an optional matcher.
type matcherEntry struct {
	Matcher string         `json:"matcher,omitempty"`
	Hooks   []commandEntry `json:"hooks"`
}

// fragment is exactly what Install writes: the statusLine command plus one
// SessionStart hook.
type fragment struct {
	StatusLine commandEntry              `json:"statusLine"`
	Hooks      map[string][]matcherEntry `json:"hooks"`
}

func buildFragment(binary string) fragment {
	return fragment{
		StatusLine: commandEntry{Type: "command", Command: StatusLineCommand(binary)},
		Hooks: map[string][]matcherEntry{
			sessionStartEvent: {
				{Hooks: []commandEntry{{Type: "command", Command: CheckUpdateCommand(binary)}}},
			},
		},
	}
}

// Install merges the hook registration into the settings file at path,
// preserving every unrelated key. The fragment is schema-validated first,
// the previous file is kept as a .backup, and the write is atomic.
func Install(path, binary string) error {
	frag := buildFragment(binary)

	fragJSON, err := json.Marshal(frag)
	if err != nil {
		return fmt.Errorf("marshaling settings fragment: %w", err)
	}
	result, err := ValidateFragment(fragJSON)
	if err != nil {
		return fmt.Errorf("validating settings fragment: %w", err)
	}
	if !result.Valid {
		// Only reachable if the built-in fragment and schema disagree.
		return fmt.Errorf("settings fragment failed schema validation: %s", formatIssues(result.Issues))
	}

	doc, err := load(path)
	if err != nil {
		return err
	}

	doc["statusLine"] = map[string]any{
		"type":    "command",
		"command": StatusLineCommand(binary),
	}
	addSessionStartHook(doc, CheckUpdateCommand(binary))

	return write(path, doc)
}

// Uninstall removes exactly what Install added. Settings written by other
// tools are untouched; a missing file is a no-op.
func Uninstall(path string) error {
	doc, err := load(path)
	if err != nil {
		return err
	}
	if len(doc) == 0 {
		return nil
	}

	if sl, ok := doc["statusLine"].(map[string]any); ok {
		if cmd, _ := sl["command"].(string); isOurCommand(cmd) {
			delete(doc, "statusLine")
		}
	}
	removeSessionStartHook(doc)

	return write(path, doc)
}

// Installed reports whether the statusLine entry and the SessionStart hook
// are registered in the settings file at path.
func Installed(path string) (statusLine, hook bool, err error) {
	doc, err := load(path)
	if err != nil {
		return false, false, err
	}

	if sl, ok := doc["statusLine"].(map[string]any); ok {
		if cmd, _ := sl["command"].(string); isOurCommand(cmd) {
			statusLine = true
		}
	}

	for _, m := range sessionStartMatchers(doc) {
		for _, h := range matcherHooks(m) {
			if cmd, _ := h["command"].(string); isOurCommand(cmd) {
				hook = true
			}
		}
	}
	return statusLine, hook, nil
}

// isOurCommand matches commands regardless of how the binary path was
// spelled at install time.
func isOurCommand(cmd string) bool {
	if cmd == "" {
		return false
	}
	fields := strings.Fields(cmd)
	if len(fields) < 2 {
		return false
	}
	return filepath.Base(fields[0]) == branding.CLIName()
}

func load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	doc := map[string]any{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return doc, nil
}

// write backs up the existing file and replaces it atomically.
func write(path string, doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	if existing, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(path+".backup", existing, 0644); err != nil {
			return fmt.Errorf("backing up settings: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp settings file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp settings file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("installing settings file: %w", err)
	}
	return nil
}

func sessionStartMatchers(doc map[string]any) []any {
	hooks, ok := doc["hooks"].(map[string]any)
	if !ok {
		return nil
	}
	matchers, _ := hooks[sessionStartEvent].([]any)
	return matchers
}

func matcherHooks(m any) []map[string]any {
	entry, ok := m.(map[string]any)
	if !ok {
		return nil
	}
	raw, _ := entry["hooks"].([]any)
	var result []map[string]any
	for _, h := range raw {
		if hm, ok := h.(map[string]any); ok {
			result = append(result, hm)
		}
	}
	return result
}

func addSessionStartHook(doc map[string]any, command string) {
	// Already registered (possibly under a different binary path)?
	for _, m := range sessionStartMatchers(doc) {
		for _, h := range matcherHooks(m) {
			if cmd, _ := h["command"].(string); isOurCommand(cmd) {
				h["command"] = command
				return
			}
		}
	}

	hooks, ok := doc["hooks"].(map[string]any)
	if !ok {
		hooks = map[string]any{}
		doc["hooks"] = hooks
	}
	matchers, _ := hooks[sessionStartEvent].([]any)
	matchers = append(matchers, map[string]any{
		"hooks": []any{
			map[string]any{"type": "command", "command": command},
		},
	})
	hooks[sessionStartEvent] = matchers
}

func removeSessionStartHook(doc map[string]any) {
	hooks, ok := doc["hooks"].(map[string]any)
	if !ok {
		return
	}
	matchers, _ := hooks[sessionStartEvent].([]any)

	var kept []any
	for _, m := range matchers {
		entry, ok := m.(map[string]any)
		if !ok {
			kept = append(kept, m)
			continue
		}
		raw, _ := entry["hooks"].([]any)
		var keptHooks []any
		for _, h := range raw {
			hm, ok := h.(map[string]any)
			if !ok {
				keptHooks = append(keptHooks, h)
				continue
			}
			if cmd, _ := hm["command"].(string); isOurCommand(cmd) {
				continue
			}
			keptHooks = append(keptHooks, h)
		}
		if len(keptHooks) > 0 {
			entry["hooks"] = keptHooks
			kept = append(kept, entry)
		}
	}

	if len(kept) == 0 {
		delete(hooks, sessionStartEvent)
		if len(hooks) == 0 {
			delete(doc, "hooks")
		}
		return
	}
	hooks[sessionStartEvent] = kept
}

func formatIssues(issues []ValidationIssue) string {
	var parts []string
	for _, issue := range issues {
		if issue.Path != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return strings.Join(parts, "; ")
}
