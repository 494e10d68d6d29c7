package main

import (
	"github.com/DimitriosDimakos/libcerializer/cmd/cerializer/cmd"
)

func main() {
	cmd.Execute()
}
