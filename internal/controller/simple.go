package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/jsonreader/internal/domain"
	m "github.com/mouse-blink/jsonreader/internal/model"
)

// SimpleUI loads one document and prints the result through the cobra command.
type SimpleUI struct {
	cmd      *cobra.Command
	workflow domain.Workflow
	config   Config
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, wf domain.Workflow, options ...Option) *SimpleUI {
	return &SimpleUI{cmd: cmd, workflow: wf, config: newConfig(options...)}
}

// Run loads path and prints the display, or a table with --format table.
func (s *SimpleUI) Run(path m.Path) error {
	if path == "" {
		return ErrNoFile
	}

	result := s.workflow.Load(path, s.config.clearOnLoad)

	if s.config.format == FormatTable {
		s.printf("%s", renderTable(result))

		return nil
	}

	s.printf("%s\n", s.workflow.Text())

	return nil
}

func renderTable(result m.LoadResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"File", string(result.Path)})

	if !result.Outcome.OK() {
		table.Append([]string{"Status", "invalid JSON document"})
	} else {
		table.Append([]string{"Number of Elements", fmt.Sprintf("%d", result.Outcome.Count)})
		table.Append([]string{"Combined value of X", fmt.Sprintf("%d", result.Outcome.SumX)})
		table.Append([]string{"Combined value of Y", fmt.Sprintf("%d", result.Outcome.SumY)})
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
