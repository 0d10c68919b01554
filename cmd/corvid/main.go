package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/corvidchess/corvid/pkg/config"
	"github.com/corvidchess/corvid/pkg/engine"
	"github.com/corvidchess/corvid/pkg/engine/uci"
	"github.com/seekerror/logw"
	"golang.org/x/sync/errgroup"
)

var (
	configPath = flag.String("config", "", "Optional TOML file with engine defaults")
	depth      = flag.Int("depth", 0, "Default search depth limit (0 == unlimited)")
	hash       = flag.Uint("hash", 0, "Transposition table size in MB (0 == use config/engine default)")
	noise      = flag.Uint("noise", 0, "Evaluation noise in centipawns (0 disables it)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

CORVID is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logw.Exitf(ctx, "Invalid config %q: %v", *configPath, err)
	}
	opts := cfg.Options()

	if *depth > 0 {
		opts.Depth = *depth
	}
	if *hash > 0 {
		opts.Hash = *hash
	}
	if *noise > 0 {
		opts.Noise = *noise
	}

	e := engine.New(ctx, "corvid", "corvidchess", engine.WithOptions(opts), engine.WithZobrist(time.Now().UnixNano()))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		driver, out := uci.NewDriver(ctx, e, in)

		var g errgroup.Group
		g.Go(func() error {
			engine.WriteStdoutLines(ctx, out)
			return nil
		})

		<-driver.Closed()
		_ = g.Wait()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
