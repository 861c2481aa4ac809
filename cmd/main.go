// cmd/main.go
package main

import cmd "github.com/mwiater/nsightful/cmd/nsightful"

// main starts the nsightful CLI application by delegating to the cobra
// root command defined in the nsightful package. It does not take any
// arguments and does not return a value.
func main() {
	cmd.Execute()
}
