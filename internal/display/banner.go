package display

import (
	"fmt"
	"os"

	"github.com/backmassage/skylapse/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____  _          _
/ ___|| | ___   _| | __ _ _ __  ___  ___
\___ \| |/ / | | | |/ _`+"`"+` | '_ \/ __|/ _ \
 ___) |   <| |_| | | (_| | |_) \__ \  __/
|____/|_|\_\\__, |_|\__,_| .__/|___/\___|
            |___/        |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
