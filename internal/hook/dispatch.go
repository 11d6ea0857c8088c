package hook

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	cblog "github.com/charmbracelet/log"

	"github.com/BabakBar/fmthook/internal/config"
	"github.com/BabakBar/fmthook/internal/fence"
	"github.com/BabakBar/fmthook/internal/log"
)

// Status is the outcome of handling one file.
type Status string

const (
	StatusFormatted   Status = "formatted"
	StatusUnchanged   Status = "unchanged"
	StatusNeedsFormat Status = "needs-format"
	StatusSkipped     Status = "skipped"
	StatusUnsupported Status = "unsupported"
	StatusFailed      Status = "failed"
)

// Result describes what [Dispatcher.Handle] did with a file.
type Result struct {
	Path   string
	Status Status
	Reason string
	Err    error
}

// Dispatcher routes saved files to the Markdown normalizer.
type Dispatcher struct {
	cfg    *config.Config
	fsys   FS
	skip   func(string) bool
	check  bool
	logger *cblog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithFS replaces the host file system.
func WithFS(fsys FS) Option {
	return func(d *Dispatcher) {
		d.fsys = fsys
	}
}

// WithLogger sets the logger results are reported to.
func WithLogger(logger *cblog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithCheck makes the Dispatcher report files that would change as
// StatusNeedsFormat instead of rewriting them.
func WithCheck() Option {
	return func(d *Dispatcher) {
		d.check = true
	}
}

// New returns a Dispatcher for cfg.
func New(cfg *config.Config, opts ...Option) (*Dispatcher, error) {
	skip, err := cfg.SkipMatcher()
	if err != nil {
		return nil, err
	}

	d := &Dispatcher{
		cfg:    cfg,
		fsys:   OSFS{},
		skip:   skip,
		logger: log.Discard(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d, nil
}

// Handle formats path if it is a Markdown file. I/O failures are reported in
// the Result with StatusFailed.
func (d *Dispatcher) Handle(path string) Result {
	if path == "" {
		return Result{Status: StatusSkipped, Reason: "no file path"}
	}

	info, err := d.fsys.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Path: path, Status: StatusSkipped, Reason: "file does not exist"}
		}

		return Result{Path: path, Status: StatusFailed, Err: fmt.Errorf("stat %s: %w", path, err)}
	}

	if info.IsDir() {
		return Result{Path: path, Status: StatusSkipped, Reason: "is a directory"}
	}

	if d.skip(path) {
		return Result{Path: path, Status: StatusSkipped, Reason: "matches skip list"}
	}

	if !d.cfg.IsMarkdown(path) {
		return Result{Path: path, Status: StatusUnsupported, Reason: "no formatter for " + filepath.Ext(path)}
	}

	return d.markdown(path, info.Mode().Perm())
}

func (d *Dispatcher) markdown(path string, perm fs.FileMode) Result {
	src, err := d.fsys.ReadFile(path)
	if err != nil {
		return Result{Path: path, Status: StatusFailed, Err: fmt.Errorf("reading %s: %w", path, err)}
	}

	out := fence.Normalize(string(src))
	if out == string(src) {
		return Result{Path: path, Status: StatusUnchanged}
	}

	if d.check {
		return Result{Path: path, Status: StatusNeedsFormat}
	}

	if err := d.fsys.WriteFile(path, []byte(out), perm); err != nil {
		return Result{Path: path, Status: StatusFailed, Err: fmt.Errorf("writing %s: %w", path, err)}
	}

	return Result{Path: path, Status: StatusFormatted}
}

// Report logs r. Changes are logged at info, failures at warn and everything
// else at debug.
func (d *Dispatcher) Report(r Result) {
	name := filepath.Base(r.Path)

	switch r.Status {
	case StatusFormatted:
		d.logger.Info("Formatted Markdown file", log.Filename, name)
	case StatusFailed:
		d.logger.Warn("Failed to format file", log.Path, r.Path, log.Error, r.Err)
	case StatusNeedsFormat:
		d.logger.Info("Would format Markdown file", log.Path, r.Path)
	case StatusUnchanged:
		d.logger.Debug("Already formatted", log.Filename, name)
	case StatusSkipped, StatusUnsupported:
		d.logger.Debug("Not formatting", log.Path, r.Path, log.Status, r.Status, log.Reason, r.Reason)
	}
}

// HandleAndReport is Handle followed by Report.
func (d *Dispatcher) HandleAndReport(path string) Result {
	r := d.Handle(path)
	d.Report(r)

	return r
}
