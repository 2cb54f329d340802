// Command easel renders a demo dashboard frame to stdout. It exercises
// the canvas drawing primitives, layered composition, and the flex
// layout engine; real applications hand the serialized frame to a
// display driver instead of printing it.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/odvcencio/easel/pkg/canvas"
	"github.com/odvcencio/easel/pkg/flex"
)

func main() {
	rows, cols := frameSize()

	border := canvas.BorderRounded
	accent := canvas.DefaultStyle().WithFG(canvas.Cyan).WithBold(true)
	if termenv.ColorProfile() == termenv.Ascii {
		border = canvas.BorderASCII
		accent = canvas.DefaultStyle().WithBold(true)
	}

	page := flex.Container{
		Direction: flex.Column,
		Children: []flex.Child{
			{Basis: flex.Px(3), Render: header(border, accent)},
			{Basis: flex.Fill(), Render: body(border, accent)},
			{Basis: flex.Px(1), Render: statusBar()},
		},
	}

	fmt.Println(page.Render(flex.Size{Rows: rows, Cols: cols}))
}

// frameSize fits the demo to the terminal, falling back to 72x18 when
// stdout is not a terminal.
func frameSize() (rows, cols int) {
	rows, cols = 18, 72
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return rows, cols
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("query terminal size: %w", err))
		return rows, cols
	}
	return min(h-1, 24), min(w, 100)
}

func header(border canvas.BorderStyle, accent canvas.Style) flex.RenderFunc {
	return func(size flex.Size) string {
		c := canvas.New(size.Rows, size.Cols)
		c.DrawBox(0, 0, size.Cols, size.Rows, border, accent)
		title := "easel — canvas & flex demo"
		c.DrawText(1, (size.Cols-runewidth.StringWidth(title))/2, accent, title)
		return c.ToANSI()
	}
}

func body(border canvas.BorderStyle, accent canvas.Style) flex.RenderFunc {
	sidebar := func(size flex.Size) string {
		c := canvas.New(size.Rows, size.Cols)
		c.DrawBox(0, 0, size.Cols, size.Rows, border, canvas.DefaultStyle())
		for i, item := range []string{"canvas", "flex", "compose"} {
			style := canvas.DefaultStyle()
			if i == 0 {
				style = style.WithReverse(true)
			}
			c.DrawText(1+i, 2, style, item)
		}
		return c.ToANSI()
	}

	content := func(size flex.Size) string {
		base := canvas.New(size.Rows, size.Cols)
		base.DrawBox(0, 0, size.Cols, size.Rows, border, canvas.DefaultStyle())
		base.FillRect(1, 1, size.Cols-2, size.Rows-2, "·", canvas.DefaultStyle().WithDim(true))

		toast := canvas.New(3, 24)
		toast.DrawBox(0, 0, 24, 3, canvas.BorderHeavy, accent)
		toast.DrawText(1, 2, accent, "layers compose!")

		base.Compose([]canvas.Layer{
			{Canvas: toast, Row: size.Rows/2 - 1, Col: (size.Cols - 24) / 2, Opaque: true},
		})
		return base.ToANSI()
	}

	inner := flex.Container{
		Direction: flex.Row,
		Gap:       flex.Gap{Horizontal: 1},
		Children: []flex.Child{
			{Basis: flex.Percent(30), Render: sidebar},
			{Basis: flex.Fill(), Render: content},
		},
	}
	return inner.Render
}

func statusBar() flex.RenderFunc {
	style := canvas.DefaultStyle().WithReverse(true)
	return func(size flex.Size) string {
		c := canvas.New(size.Rows, size.Cols)
		c.FillRect(0, 0, size.Cols, size.Rows, " ", style)
		c.DrawText(0, 1, style, "q quits · arrows move")
		return c.ToANSI()
	}
}
