package model

// Path represents a file system path.
type Path string

// LoadResult describes one completed load action.
type LoadResult struct {
	Path    Path
	Outcome ParseOutcome
	Message string
	// ReadErr is set when the file could not be read; the load still
	// completes with empty content.
	ReadErr error
}
