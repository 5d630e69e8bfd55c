package main

import (
	"flag"
	"os"

	"github.com/jsvensson/swatchkit/internal/lsp"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var version = "dev"

func main() {
	verbosity := flag.Int("verbosity", 1, "log verbosity; logs go to stderr")
	flag.Parse()

	commonlog.Configure(*verbosity, nil)

	s := lsp.NewServer(version)
	if err := s.Run(); err != nil {
		os.Exit(1)
	}
}
