package style

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/c9s/rbtree/pkg/rbtree"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsDefault,
	}
	return &style
}

// NodeColor returns the terminal colors used to render a node color.
func NodeColor(c rbtree.Color) text.Colors {
	if c == rbtree.Red {
		return text.Colors{text.FgHiRed, text.Bold}
	}
	return text.Colors{text.FgHiBlack, text.BgWhite}
}

// EntriesTable renders (key, color) pairs, one row each, in the given order.
func EntriesTable[K any](w io.Writer, title string, entries []rbtree.Entry[K], colored bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*NewDefaultTableStyle())
	t.SetTitle(title)
	t.AppendHeader(table.Row{"#", "Key", "Color"})

	for i, e := range entries {
		color := e.Color.String()
		if colored {
			color = NodeColor(e.Color).Sprint(color)
		}
		t.AppendRow(table.Row{i + 1, fmt.Sprintf("%v", e.Key), color})
	}

	t.AppendFooter(table.Row{"", "total", len(entries)})
	t.Render()
}

// StatsTable renders the tree counters together with the size figures.
func StatsTable(w io.Writer, size, height, blackHeight int, stats rbtree.Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(*NewDefaultTableStyle())
	t.SetTitle("rbtree stats")
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"size", size},
		{"height", height},
		{"black height", blackHeight},
		{"nodes allocated", stats.Alloc},
		{"nodes released", stats.Free},
		{"rotations", stats.Rotations},
	})

	t.AppendSeparator()
	for i, n := range stats.InsertCases {
		t.AppendRow(table.Row{fmt.Sprintf("insert repair case %d", i+1), n})
	}

	t.AppendSeparator()
	for i, n := range stats.DeleteCases {
		t.AppendRow(table.Row{fmt.Sprintf("delete repair case %d", i+1), n})
	}

	t.Render()
}
