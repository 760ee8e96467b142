// Command depsolve resolves a repository catalog, an initial installed
// state, and a set of install/uninstall constraints into a cost-minimal
// ordered transition plan.
package main

import "depsolve/internal/cli"

func main() {
	cli.Execute()
}
