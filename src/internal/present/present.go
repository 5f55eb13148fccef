// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package present

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/inventory"
)

// Per-column truncation widths for the table view.
const (
	maxNameWidth   = 24
	maxDomainWidth = 32
	maxMethodWidth = 24
)

// expiryDateFormat renders expiry timestamps as dates; the exact minute a
// certificate lapses adds nothing at a glance.
const expiryDateFormat = "2006-01-02"

// Options configures a Presenter.
type Options struct {
	// Color enables ANSI highlighting. Resolve it once at startup with
	// ColorEnabled; never flip it mid-run.
	Color bool
	// WarnDays is the threshold below which valid certificates are
	// highlighted as expiring soon.
	WarnDays int
}

// ColorEnabled decides whether table output should carry ANSI color codes:
// only when stdout is an interactive terminal, NO_COLOR is unset, and the
// user didn't pass a disabling flag.
func ColorEnabled(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Presenter renders inventory records.
type Presenter struct {
	opts Options

	red    *color.Color
	yellow *color.Color
}

// New creates a Presenter with the given options. A non-positive WarnDays
// falls back to 30.
func New(opts Options) *Presenter {
	if opts.WarnDays <= 0 {
		opts.WarnDays = 30
	}

	p := &Presenter{
		opts:   opts,
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
	}
	if opts.Color {
		// The color decision was made at startup; don't let the library's
		// own TTY sniffing second-guess it.
		p.red.EnableColor()
		p.yellow.EnableColor()
	}
	return p
}

// RenderTable renders the records as a fixed-width table, already assumed
// sorted by the caller. An empty set renders the "No certificates found."
// message instead of an empty table.
//
// Each row gets at most one highlight: expired rows are red, rows inside
// the warning window yellow, expired taking precedence.
func (p *Presenter) RenderTable(records []inventory.Record) string {
	if len(records) == 0 {
		return "No certificates found.\n"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf)
	table.Header([]string{"#", "NAME", "DOMAIN", "EXPIRY", "DAYS LEFT", "STATUS", "METHOD"})

	var rows [][]string
	for i, r := range records {
		row := []string{
			fmt.Sprintf("%d", i+1),
			truncate(r.Name, maxNameWidth),
			truncate(r.Domain, maxDomainWidth),
			r.Expiry.Format(expiryDateFormat),
			fmt.Sprintf("%d", r.DaysLeft),
			string(r.Status),
			truncate(r.Method, maxMethodWidth),
		}

		if c := p.rowColor(r); c != nil {
			for j, cell := range row {
				row[j] = c.Sprint(cell)
			}
		}

		rows = append(rows, row)
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// rowColor picks the single highlight for a record, or nil for none.
func (p *Presenter) rowColor(r inventory.Record) *color.Color {
	if !p.opts.Color {
		return nil
	}
	if r.Status == inventory.StatusExpired {
		return p.red
	}
	if r.DaysLeft < p.opts.WarnDays {
		return p.yellow
	}
	return nil
}

// truncate shortens s to at most max bytes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// jsonReport is the machine-readable rendering of a scan.
type jsonReport struct {
	GeneratedAt  time.Time          `json:"generatedAt"`
	Count        int                `json:"count"`
	Certificates []inventory.Record `json:"certificates"`
}

// RenderJSON renders the records as an indented JSON document for scripted
// consumers. Fields are never truncated here.
func (p *Presenter) RenderJSON(records []inventory.Record) ([]byte, error) {
	if records == nil {
		records = []inventory.Record{}
	}

	report := jsonReport{
		GeneratedAt:  time.Now().UTC(),
		Count:        len(records),
		Certificates: records,
	}

	return json.MarshalIndent(report, "", "  ")
}
