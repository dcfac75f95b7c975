package main

import (
	"github.com/mylxsw/redis-compat/cmd"
)

var Version string
var GitCommit string

func main() {
	cmd.Execute(Version, GitCommit)
}
