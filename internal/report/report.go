// Package report renders reallocation events as text tables, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cheynewallace/tabby"
	"github.com/logrusorgru/aurora/v4"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pavanmanishd/slicegrow"
	"github.com/pavanmanishd/slicegrow/internal/telemetry"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Report is the result of one simulation.
type Report struct {
	Count     int                           `json:"count" yaml:"count"`
	Initial   int                           `json:"initial" yaml:"initial"`
	Threshold int                           `json:"threshold" yaml:"threshold"`
	Events    []slicegrow.ReallocationEvent `json:"events" yaml:"events"`
	Summary   Summary                       `json:"summary" yaml:"summary"`
	Metrics   []telemetry.Sample            `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// Comparison places the modelled growth next to the runtime's.
type Comparison struct {
	Count   int                           `json:"count" yaml:"count"`
	Model   []slicegrow.ReallocationEvent `json:"model" yaml:"model"`
	Builtin []slicegrow.ReallocationEvent `json:"builtin" yaml:"builtin"`
}

// Options control text rendering.
type Options struct {
	Color bool
}

// Render writes r to w in the given format.
func Render(w io.Writer, format Format, r Report, opts Options) error {
	switch format {
	case FormatJSON:
		return printJSON(w, r)
	case FormatYAML:
		return printYAML(w, r)
	case FormatText, "":
		return printText(w, r, opts)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// RenderComparison writes c to w in the given format.
func RenderComparison(w io.Writer, format Format, c Comparison, opts Options) error {
	switch format {
	case FormatJSON:
		return printJSON(w, c)
	case FormatYAML:
		return printYAML(w, c)
	case FormatText, "":
		return printComparisonText(w, c, opts)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func printText(w io.Writer, r Report, opts Options) error {
	au := aurora.New(aurora.WithColors(opts.Color))
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "%s %d appends, initial capacity %d, threshold %d\n\n",
		au.Bold("Growth:").String(), r.Count, r.Initial, r.Threshold); err != nil {
		return err
	}

	t := newTable(w)
	t.AddHeader("LEN", "OLD CAP", "NEW CAP", "RATIO")
	for _, ev := range r.Events {
		t.AddLine(num(p, ev.ResultingLength), num(p, ev.PriorCapacity), num(p, ev.NewCapacity), ratio(ev))
	}
	t.Print()

	s := r.Summary
	fmt.Fprintln(w)
	fmt.Fprintln(w, au.Bold("Summary:"))
	p.Fprintf(w, "  Reallocations:    %d\n", s.Reallocations)
	p.Fprintf(w, "  Final capacity:   %d\n", s.FinalCapacity)
	p.Fprintf(w, "  Elements copied:  %d\n", s.ElementsCopied)
	if s.Reallocations > 1 {
		fmt.Fprintf(w, "  Ratio range:      %.2f - %.2f\n", s.MinRatio, s.MaxRatio)
	}
	fmt.Fprintf(w, "  Unused capacity:  %.1f%%\n", s.Overhead*100)

	if len(r.Metrics) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, au.Bold("Metrics:"))
		mt := newTable(w)
		mt.AddHeader("NAME", "LABELS", "VALUE")
		for _, m := range r.Metrics {
			mt.AddLine(m.Name, m.Labels, fmt.Sprintf("%g", m.Value))
		}
		mt.Print()
	}
	return nil
}

func printComparisonText(w io.Writer, c Comparison, opts Options) error {
	au := aurora.New(aurora.WithColors(opts.Color))
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "%s %d appends\n\n", au.Bold("Model vs runtime:").String(), c.Count); err != nil {
		return err
	}

	t := newTable(w)
	t.AddHeader("#", "MODEL LEN", "MODEL CAP", "MODEL RATIO", "RUNTIME LEN", "RUNTIME CAP", "RUNTIME RATIO")
	for i := 0; i < max(len(c.Model), len(c.Builtin)); i++ {
		row := []interface{}{i + 1}
		row = append(row, eventCells(p, c.Model, i)...)
		row = append(row, eventCells(p, c.Builtin, i)...)
		t.AddLine(row...)
	}
	t.Print()
	return nil
}

func eventCells(p *message.Printer, events []slicegrow.ReallocationEvent, i int) []interface{} {
	if i >= len(events) {
		return []interface{}{"", "", ""}
	}
	ev := events[i]
	return []interface{}{num(p, ev.ResultingLength), num(p, ev.NewCapacity), ratio(ev)}
}

// num formats n with thousands separators.
func num(p *message.Printer, n int) string {
	return p.Sprintf("%d", n)
}

func ratio(ev slicegrow.ReallocationEvent) string {
	if ev.PriorCapacity == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", ev.Ratio())
}

func newTable(w io.Writer) *tabby.Tabby {
	return tabby.NewCustom(tabwriter.NewWriter(w, 0, 0, 2, ' ', 0))
}
