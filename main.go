package main

import "catalog-reconciler/cmd"

func main() {
	cmd.Execute()
}
