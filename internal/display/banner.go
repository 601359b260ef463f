package display

import (
	"fmt"
	"io"

	"github.com/backmassage/samplenamer/internal/term"
)

// PrintBanner prints the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer, version string) {
	fmt.Fprint(w, term.Paint(term.Magenta, `                           _
 ___  __ _ _ __ ___  _ __ | | ___ _ __   __ _ _ __ ___   ___ _ __
/ __|/ _`+"`"+` | '_ `+"`"+` _ \| '_ \| |/ _ \ '_ \ / _`+"`"+` | '_ `+"`"+` _ \ / _ \ '__|
\__ \ (_| | | | | | | |_) | |  __/ | | | (_| | | | | | |  __/ |
|___/\__,_|_| |_| |_| .__/|_|\___|_| |_|\__,_|_| |_| |_|\___|_|
                    |_|
`))
	if version != "" {
		fmt.Fprintln(w, term.Paint(term.Dim, "  v"+version))
	}
}
