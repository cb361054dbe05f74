package main

import (
	"product-with-repeat/cli"
)

func main() {
	cli.Start()
}
