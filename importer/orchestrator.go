package importer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
)

// Options configures a bulk import run.
type Options struct {
	// ListPath is the claim-list source, .csv or .json. Required.
	ListPath string
	// DetailPath is the optional claim-detail source.
	DetailPath string
	Mode       Mode
	// DryRun loads and reports diagnostics without writing anything.
	DryRun bool
	// Verbosity: 0 silent, 1 summary, 2+ adds a sample header dump.
	Verbosity int
	// Out receives diagnostics and the summary; defaults to stdout.
	Out io.Writer
}

// Orchestrator wires the record loader and the reconciliation engine into
// a complete import run.
type Orchestrator struct {
	store ClaimStore
}

func NewOrchestrator(store ClaimStore) *Orchestrator {
	return &Orchestrator{store: store}
}

// Run loads every source up front, so a missing or unsupported file
// aborts before any store mutation, then reconciles and reports counts.
// Dry-run stops after the load diagnostics. The returned counts are nil
// for dry runs.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*Counts, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeAppend
	}

	listRows, err := LoadRecords(opts.ListPath)
	if err != nil {
		return nil, err
	}
	var detailRows []Row
	if opts.DetailPath != "" {
		detailRows, err = LoadRecords(opts.DetailPath)
		if err != nil {
			return nil, err
		}
	}

	if opts.Verbosity >= 1 {
		fmt.Fprintf(out, "Loaded rows -> list: %d  detail: %d\n", len(listRows), len(detailRows))
		if opts.Verbosity >= 2 {
			fmt.Fprintf(out, "Sample list keys:   %v\n", sampleKeys(listRows))
			fmt.Fprintf(out, "Sample detail keys: %v\n", sampleKeys(detailRows))
		}
	}

	if opts.DryRun {
		if opts.Verbosity >= 1 {
			fmt.Fprintln(out, "Dry-run: stopping before database writes.")
		}
		return nil, nil
	}

	if mode == ModeOverwrite && opts.Verbosity >= 1 {
		fmt.Fprintln(out, "Overwrite mode: clearing tables...")
	}

	counts, err := NewEngine(o.store).Run(ctx, listRows, detailRows, mode)
	if err != nil {
		return nil, err
	}

	if opts.Verbosity >= 1 {
		fmt.Fprintf(out, "Imported claims -> created: %d, updated: %d; details linked: %d\n",
			counts.Created, counts.Updated, counts.Linked)
	}
	return &counts, nil
}

// sampleKeys reports the sorted normalized keys of the first row, showing
// which headers the import actually saw.
func sampleKeys(rows []Row) []string {
	if len(rows) == 0 {
		return []string{}
	}
	keys := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
