package falcon

import (
	"fmt"
	"os"
)

var debugOn = os.Getenv("FALCON_DEBUG") == "1"

func dbg(f string, a ...any) {
	if debugOn {
		fmt.Fprintf(os.Stderr, f, a...)
	}
}
