// Command soyutil applies the bidi, escaping and word break helpers to
// text from the command line or stdin.
package main

import "github.com/splix/soyutils-requirejs/cmd/soyutil/cmd"

func main() {
	cmd.Execute()
}
