package cli

import (
	"fmt"
	"io"

	"github.com/nonebot-go/nb/internal/style"
)

// logoLines is "NoneBot" in the figlet "basic" font.
var logoLines = []string{
	"d8b   db  .d88b.  d8b   db d88888b d8888b.  .d88b.  d888888b",
	"888o  88 .8P  Y8. 888o  88 88'     88  `8D .8P  Y8. `~~88~~'",
	"88V8o 88 88    88 88V8o 88 88ooooo 88oooY' 88    88    88",
	"88 V8o88 88    88 88 V8o88 88~~~~~ 88~~~b. 88    88    88",
	"88  V888 `8b  d8' 88  V888 88.     88   8D `8b  d8'    88",
	"VP   V8P  `Y88P'  VP   V8P Y88888P Y8888P'  `Y88P'     YP",
}

func printLogo(w io.Writer) {
	s := style.New(w)
	for _, line := range logoLines {
		fmt.Fprintln(w, s.BoldCyan(line))
	}
}
