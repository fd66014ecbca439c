package main

import "github.com/VyomPatel31/Vendor-Dashboard/internal/cmd"

func main() {
	cmd.Execute()
}
