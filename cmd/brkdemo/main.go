// Command brkdemo runs small programs against a brk heap and prints what the heap looks like
// afterward.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
)

func main() {
	app := kingpin.New("brkdemo", "Exercise a first-fit brk heap with small data structures.")
	opts := addHeapFlags(app)

	addMatrixCommand(app, opts)
	addListCommand(app, opts)
	addArrayCommand(app, opts)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}
