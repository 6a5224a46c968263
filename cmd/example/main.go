package main

import "fmt"

// Overridden through -ldflags at release time.
var (
	version = "develop"
	commit  = "none"
)

func main() {
	fmt.Printf("clinicdesk-service %s (commit %s)\n", version, commit)
}
