package main

import (
	"github.com/futevolucao/futevolucao-go/internal/cli"
)

func main() {
	cli.Execute()
}
