package main

import (
	"github.com/sccity/dispatch-etl/cmd"
)

func main() {
	cmd.Execute()
}
