package main

import (
	"github.com/c9s/rbtree/pkg/cmd"
)

func main() {
	cmd.Execute()
}
