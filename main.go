package main

import (
	"github.com/guidekit/guidekit/cmd"
)

func main() {
	cmd.Execute()
}
