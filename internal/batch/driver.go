package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
)

// Handler processes one file. A returned error marks the file as failed.
type Handler func(ctx context.Context, path string) error

type FileResult struct {
	Name string
	Err  string
}

type Stats struct {
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

type Report struct {
	Results []FileResult
	Stats   Stats
}

// FailedFiles is every matched name that did not succeed, sorted.
func (r Report) FailedFiles() []string {
	ok := make(map[string]struct{}, len(r.Results))
	for _, res := range r.Results {
		if res.Err == "" {
			ok[res.Name] = struct{}{}
		}
	}
	var failed []string
	for _, res := range r.Results {
		if _, done := ok[res.Name]; !done {
			failed = append(failed, res.Name)
		}
	}
	sort.Strings(failed)
	return failed
}

// Driver walks a folder sequentially. Progress lines go to Out; details go to the logger.
type Driver struct {
	Out    io.Writer
	logger *slog.Logger
}

func NewDriver(out io.Writer, logger *slog.Logger) *Driver {
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{Out: out, logger: logger}
}

// Run calls h for every file in dir that passes f. A failing or panicking handler only
// fails its own file. The error is non-nil only when dir cannot be listed or ctx ends.
func (d *Driver) Run(ctx context.Context, dir string, f Filter, h Handler) (Report, error) {
	var rep Report
	names, err := Scan(dir, f)
	if err != nil {
		return rep, err
	}
	d.logger.Info("batch.scan.ok", "dir", dir, "prefix", f.Prefix, "ext", f.Ext, "matched", len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rep.Stats.Matched++
		fmt.Fprintf(d.Out, "Processing: %s\n", name)

		if err := d.safeCall(ctx, h, filepath.Join(dir, name)); err != nil {
			d.logger.Error("batch.file.failed", "file", name, "error", err)
			fmt.Fprintf(d.Out, "Error processing %s: %v\n", name, err)
			rep.Results = append(rep.Results, FileResult{Name: name, Err: err.Error()})
			rep.Stats.Failed++
			continue
		}
		rep.Results = append(rep.Results, FileResult{Name: name})
		rep.Stats.Succeeded++
	}
	d.logger.Info("batch.run.done",
		"matched", rep.Stats.Matched,
		"succeeded", rep.Stats.Succeeded,
		"failed", rep.Stats.Failed,
	)
	return rep, nil
}

func (d *Driver) safeCall(ctx context.Context, h Handler, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(ctx, path)
}

// PrintSummary writes the closing lines of a run.
func (d *Driver) PrintSummary(rep Report, output string) {
	fmt.Fprintf(d.Out, "\nSuccessfully processed %d/%d files\n", rep.Stats.Succeeded, rep.Stats.Matched)
	if output != "" {
		fmt.Fprintf(d.Out, "Results saved to: %s\n", output)
	}
	if failed := rep.FailedFiles(); len(failed) > 0 {
		fmt.Fprintln(d.Out, "\nFailed to process:")
		for _, name := range failed {
			fmt.Fprintf(d.Out, "- %s\n", name)
		}
	}
}
