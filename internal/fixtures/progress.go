package fixtures

import (
	"fmt"
	"time"
)

// DisplayProgressBar prints a dot to standard output every 200ms until
// terminateCh is signalled, exactly as the teacher's generator did while
// writing a large generated file. Callers run it in its own goroutine
// alongside WriteTextCorpus/WriteSignalFile and send on (or close)
// terminateCh when the generator returns.
func DisplayProgressBar(terminateCh <-chan struct{}) {
	fmt.Print("Generating fixture: [")
	for {
		select {
		case <-terminateCh:
			fmt.Print("]\n")
			return
		default:
			fmt.Print(".")
			time.Sleep(200 * time.Millisecond)
		}
	}
}
