package log

// Structured logging keys.
const (
	Dir      = "dir"
	Error    = "error"
	Filename = "filename"
	Path     = "path"
	Reason   = "reason"
	Status   = "status"
	Tool     = "tool"
)
