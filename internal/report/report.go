// Package report prints the banner and the conversion summary to the console.
package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/retroenv/lorommap/internal/lorom"
)

const codePreviewSize = 16

// Printer writes styled console output.
type Printer struct {
	w io.Writer

	title lipgloss.Style
	key   lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
}

// New returns a printer that writes to w. Colors are only used if w is a
// terminal that supports them.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:     w,
		title: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		key:   r.NewStyle().Width(16).Foreground(lipgloss.ANSIColor(8)),
		value: r.NewStyle().Bold(true),
		warn:  r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
	}
}

// Banner prints the program name and version.
func (p *Printer) Banner(version string) {
	name := "lorommap - flat image to LoROM converter"
	line := strings.Repeat("-", len(name)+2)
	fmt.Fprintf(p.w, "[%s]\n", line)
	fmt.Fprintf(p.w, "[ %s ]\n", p.title.Render(name))
	fmt.Fprintf(p.w, "[%s]\n\n", line)
	fmt.Fprintf(p.w, "version: %s\n\n", version)
}

// Summary prints the layout details of a converted image.
func (p *Printer) Summary(output string, img *lorom.Image) {
	fmt.Fprintln(p.w, p.title.Render("Fixed ROM structure:"))
	p.field("File", output)
	p.field("Size", fmt.Sprintf("%d bytes", len(img.Data)))
	p.field("Title", fmt.Sprintf("%q", img.Title()))
	p.field("Code start", fmt.Sprintf("$%04X (%s)", img.Boundary.Offset, img.Boundary.Rule))
	p.field("Code size", fmt.Sprintf("$%04X bytes", img.CodeLength))
	p.field("Vectors", img.VectorSource.String())
	p.field("Reset vector", fmt.Sprintf("$%04X", img.ResetVector()))
	p.field("NMI vector", fmt.Sprintf("$%04X", img.NMIVector()))
	p.field("IRQ vector", fmt.Sprintf("$%04X", img.IRQVector()))
	p.field("Code at $8000", hex.EncodeToString(img.CodePreview(codePreviewSize)))

	for _, warning := range Warnings(img) {
		fmt.Fprintln(p.w, p.warn.Render("warning: "+warning))
	}
}

// Warnings returns the degraded conversion paths that were taken for img.
func Warnings(img *lorom.Image) []string {
	var warnings []string
	if !img.HeaderCopied {
		warnings = append(warnings, "input is shorter than the header, header area is empty")
	}
	if img.Boundary.Rule == lorom.RuleDefault {
		warnings = append(warnings, "no reset handler idiom found, assuming code starts at $0050")
	}
	if img.VectorSource == lorom.SourceNone {
		warnings = append(warnings, "no interrupt vectors found")
	}
	if img.CodeLength == 0 {
		warnings = append(warnings, "program bank is empty")
	}
	return warnings
}

func (p *Printer) field(name, value string) {
	fmt.Fprintf(p.w, "  %s%s\n", p.key.Render(name+":"), p.value.Render(value))
}
