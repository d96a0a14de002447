package domain

import (
	"github.com/rs/zerolog"

	"github.com/mouse-blink/jsonreader/internal/adapter"
	m "github.com/mouse-blink/jsonreader/internal/model"
)

// Workflow runs one load action: read, extract, format and display.
type Workflow interface {
	// Load reads the document at path and appends its summary to the
	// display, clearing earlier output first when clearFirst is set.
	Load(path m.Path, clearFirst bool) m.LoadResult
	// Text returns everything currently on the display.
	Text() string
}

type workflow struct {
	fsAdapter adapter.FileAdapter
	display   *Display
	log       zerolog.Logger
}

// NewWorkflow creates a Workflow with an empty display.
func NewWorkflow(fsAdapter adapter.FileAdapter, log zerolog.Logger) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		display:   NewDisplay(),
		log:       log,
	}
}

func (w *workflow) Load(path m.Path, clearFirst bool) m.LoadResult {
	w.log.Debug().Str("path", string(path)).Bool("clear", clearFirst).Msg("loading document")

	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		// unreadable files go through the parser as empty content
		w.log.Warn().Err(err).Str("path", string(path)).Msg("read failed")

		content = ""
	}

	outcome := Extract(content)
	message := Format(outcome)
	w.display.AppendResult(message, clearFirst)

	w.log.Info().
		Str("path", string(path)).
		Bool("valid", outcome.OK()).
		Int("count", outcome.Count).
		Int("sum_x", outcome.SumX).
		Int("sum_y", outcome.SumY).
		Msg("document loaded")

	return m.LoadResult{
		Path:    path,
		Outcome: outcome,
		Message: message,
		ReadErr: err,
	}
}

func (w *workflow) Text() string {
	return w.display.Text()
}
