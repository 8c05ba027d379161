package toolutils

import (
	"fmt"
	"io"
	"strings"
)

// StatusPrinter prints key=value lines with the keys right-aligned.
type StatusPrinter struct {
	Out     io.Writer
	Padding int
}

func (s StatusPrinter) Print(key string, value any) {
	fmt.Fprintf(s.Out, "%s%s=%v\n", strings.Repeat(" ", max(s.Padding-len(key), 0)), key, value)
}
