package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	colorGreen = color.New(color.FgGreen)
	colorBlue  = color.New(color.FgBlue)
	colorGray  = color.New(color.FgHiBlack)
)

const indent = "  "

func successf(w io.Writer, msg string, v ...any) {
	fmt.Fprintf(w, "%s%s %s\n", indent, colorGreen.Sprint("✔"), fmt.Sprintf(msg, v...))
}

func infof(w io.Writer, msg string, v ...any) {
	fmt.Fprintf(w, "%s%s %s\n", indent, colorBlue.Sprint("•"), fmt.Sprintf(msg, v...))
}

func detailf(w io.Writer, msg string, v ...any) {
	fmt.Fprintf(w, "%s%s%s\n", indent, indent, colorGray.Sprintf(msg, v...))
}
