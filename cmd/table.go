package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jsphweid/motif/model"
	"github.com/jsphweid/motif/render"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	opStyle     = lipgloss.NewStyle().Width(22).Align(lipgloss.Left)
	cellStyle   = lipgloss.NewStyle().Width(10).Align(lipgloss.Right)
	nameStyle   = lipgloss.NewStyle().PaddingLeft(2)
)

func row(first string, cells ...string) string {
	parts := []string{opStyle.Render(first)}
	for _, c := range cells {
		parts = append(parts, cellStyle.Render(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// printCalls writes one line per recorded renderer call
func printCalls(w io.Writer, calls []render.Call) {
	fmt.Fprintln(w, headerStyle.Render(row("op", "instr", "pitch", "start", "end", "volume")))
	for _, c := range calls {
		switch c.Op {
		case render.OpBeginTrack:
			fmt.Fprintln(w, row(string(c.Op), fmt.Sprint(c.Instrument)))
		case render.OpEmitNote:
			n := c.Note
			fmt.Fprintln(w, row(string(c.Op), "",
				fmt.Sprint(n.Pitch), fmt.Sprintf("%g", n.Start), fmt.Sprintf("%g", n.End), fmt.Sprintf("%.2f", n.Volume)))
		case render.OpEmitChordEnvelope:
			fmt.Fprintln(w, row(string(c.Op), "", "", "0", fmt.Sprint(c.Length), fmt.Sprintf("%.2f", c.Volume)))
		default:
			fmt.Fprintln(w, row(string(c.Op)))
		}
	}
}

func printInstruments(w io.Writer, instruments []model.Instrument) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%5s%s", "index", nameStyle.Render("name"))))
	for _, in := range instruments {
		fmt.Fprintf(w, "%5d%s\n", in.Index, nameStyle.Render(in.Name))
	}
}
