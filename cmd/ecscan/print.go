package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ecscan/layout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	changedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// printer writes the show/scan/query output, styled when color is set.
type printer struct {
	w     io.Writer
	color bool
}

func newPrinter(w io.Writer, color bool) *printer {
	return &printer{w: w, color: color}
}

func (p *printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p *printer) show(tbl *layout.Table) {
	header := fmt.Sprintf("ECRam Mapped address: 0x%08X Size: %d", tbl.Region.Address, tbl.Region.Size)
	fmt.Fprintln(p.w, p.render(titleStyle, header))
	for _, f := range tbl.Fields {
		fmt.Fprintf(p.w, "[%s] Dword Mask: 0x%08x, Byte Offset: 0x%02x, Size: %02d\n",
			p.render(nameStyle, f.Name), f.Mask, f.ByteOffset, f.ByteLength)
	}
	for _, name := range tbl.Duplicates {
		fmt.Fprintln(p.w, p.render(errorStyle, fmt.Sprintf("warning: field %s declared more than once, last one wins", name)))
	}
}

// values prints one line per value and returns an error if any read failed.
func (p *printer) values(values []layout.Value) error {
	failed := 0
	for _, v := range values {
		if !p.value(v) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d field(s) could not be read", failed, len(values))
	}
	return nil
}

// value prints a single result and reports whether the read succeeded.
func (p *printer) value(v layout.Value) bool {
	if v.Err != nil {
		fmt.Fprintf(p.w, "[%s] %s\n", p.render(nameStyle, v.Name), p.render(errorStyle, v.Err.Error()))
		return false
	}
	fmt.Fprintf(p.w, "[%s] %s\n", p.render(nameStyle, v.Name), p.render(valueStyle, fmt.Sprintf("0x%08X", v.Value)))
	return true
}

func (p *printer) notFound(name string) {
	fmt.Fprintf(p.w, "Field %s not found, ignoring\n", name)
}
