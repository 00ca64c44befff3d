package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/efremidze/swift-patterns-skill/internal/config"
	"github.com/efremidze/swift-patterns-skill/internal/host"
	"github.com/efremidze/swift-patterns-skill/internal/statusline"
	"github.com/efremidze/swift-patterns-skill/internal/todos"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statuslineCmd)
}

var statuslineCmd = &cobra.Command{
	Use:    "statusline",
	Short:  "Render the status line from a JSON descriptor on stdin",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		// Hook contract: one line on stdout, exit 0, no matter what.
		raw, _ := io.ReadAll(os.Stdin)

		r := statusline.Renderer{
			StateDir:   config.Dir(),
			ShowTodos:  config.GetBool(config.KeyTodosSegment),
			ShowUpdate: config.GetBool(config.KeyUpdateSegment),
		}
		if dir, err := host.TodosPath(); err == nil {
			r.Todos = todos.Store{Dir: dir}
		}

		fmt.Fprintln(os.Stdout, r.Render(raw))
	},
}
