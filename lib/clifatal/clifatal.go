/*Package clifatal contains the CLI's two error-reporting paths: a
user-facing message for errors the user can fix by changing input or
configuration, and a stack-trace dump for errors that mean something inside
the program is wrong. Only cmd/sasa calls this package; the library core
never logs or exits on its own.
*/
package clifatal

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/phil-mansfield/sasa/lib/sasaerr"
)

// External reports an error to stderr and exits. It should be used for
// InvalidInput and InvalidParam errors: things a user can fix through
// changes to their input file or configuration.
func External(format string, a ...interface{}) {
	log.Printf("sasa exited with the following error:\n"+format, a...)
	os.Exit(1)
}

// Internal reports an error to stderr along with a stack trace and exits.
// It should be used for errors that indicate a bug rather than bad input,
// such as an unexpected OutOfMemory failure.
func Internal(format string, a ...interface{}) {
	log.Println("sasa exited with the following error:")
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintf(os.Stderr, "\n\n")
	debug.PrintStack()
	os.Exit(1)
}

// Report dispatches err to External or Internal based on its Kind:
// InvalidInput and InvalidParam are external; OutOfMemory and Cancelled
// (and anything not a *sasaerr.Error) are internal.
func Report(err error) {
	if e, ok := err.(*sasaerr.Error); ok {
		switch e.Kind {
		case sasaerr.InvalidInput, sasaerr.InvalidParam:
			External("%s", err)
			return
		}
	}
	Internal("%s", err)
}
