package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mager/talentfinder/cli"
)

func main() {
	if err := cli.NewRootCmd(cli.DefaultFactory).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
