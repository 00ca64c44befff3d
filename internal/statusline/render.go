package statusline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/efremidze/swift-patterns-skill/internal/todos"
	"github.com/efremidze/swift-patterns-skill/internal/updater"
	"github.com/fatih/color"
)

var (
	dirColor     = color.New(color.FgCyan)
	modelColor   = color.New(color.FgMagenta)
	contextColor = color.New(color.FgHiBlack)
	costColor    = color.New(color.FgGreen)
	todosColor   = color.New(color.FgYellow)
	updateColor  = color.New(color.FgYellow, color.Bold)
)

// Renderer composes a status line from its three sources. All fields are
// optional collaborators; a zero Renderer renders from stdin hints alone.
type Renderer struct {
	// Todos supplies the session's outstanding task count.
	Todos todos.Source
	// StateDir is where the version-check record lives.
	StateDir string
	// ShowTodos and ShowUpdate gate the optional trailing segments.
	ShowTodos  bool
	ShowUpdate bool
}

// Render produces the status line for one invocation. It is a pure function
// of the piped descriptor and the on-disk state at call time: identical
// inputs yield identical output, and no failure in any source escapes —
// the worst case is a line with fewer segments.
func (r Renderer) Render(raw []byte) string {
	in := ParseInput(raw)

	// Fixed segment order: display hints, task count, update indicator.
	var segments []string

	if seg := renderDir(in.Workspace); seg != "" {
		segments = append(segments, seg)
	}
	if in.Model.DisplayName != "" {
		segments = append(segments, modelColor.Sprint(in.Model.DisplayName))
	}
	if pct := int(in.Context.UsedPercentage); pct > 0 {
		segments = append(segments, contextColor.Sprintf("%d%%", pct))
	}
	if in.Cost.TotalCostUSD > 0 {
		segments = append(segments, costColor.Sprintf("$%.2f", in.Cost.TotalCostUSD))
	}

	if r.ShowTodos && r.Todos != nil {
		if n, err := r.Todos.PendingCount(in.SessionID); err == nil && n > 0 {
			segments = append(segments, todosColor.Sprintf("%d pending", n))
		}
	}

	if r.ShowUpdate && r.StateDir != "" {
		// Any record error counts as "no record": no indicator.
		if rec, err := updater.LoadRecord(r.StateDir); err == nil && rec != nil && rec.UpdateAvailable {
			segments = append(segments, updateColor.Sprint("⬆ update available"))
		}
	}

	return strings.Join(segments, " ")
}

// renderDir shows the project name, with the path inside the project
// appended when the session has descended into a subdirectory.
func renderDir(ws WorkspaceInfo) string {
	if ws.ProjectDir == "" {
		if ws.CurrentDir == "" {
			return ""
		}
		return dirColor.Sprint(filepath.Base(ws.CurrentDir))
	}

	name := filepath.Base(ws.ProjectDir)
	if ws.CurrentDir != "" && ws.CurrentDir != ws.ProjectDir && strings.HasPrefix(ws.CurrentDir, ws.ProjectDir) {
		sub := strings.TrimPrefix(ws.CurrentDir, ws.ProjectDir)
		return dirColor.Sprint(fmt.Sprintf("%s%s", name, sub))
	}
	return dirColor.Sprint(name)
}
