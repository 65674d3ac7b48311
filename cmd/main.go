package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"img2pdf/config"
	"img2pdf/console"
	"img2pdf/contracts"
	"img2pdf/converter"
	"img2pdf/logger"
)

const interruptedNotice = "\nimg2pdf: Quit: Process terminated by user."

func main() {
	cfg, cfgErr := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))

	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "img2pdf: logging disabled: %v\n", err)
	}

	console.SetColor(cfg.Color)
	if cfgErr != nil {
		fmt.Println(console.Format(console.Warning, fmt.Sprintf("img2pdf: Warning: Ignoring config file: %v", cfgErr)))
	}
	if cfg.Source != "" {
		log.Debug().Str("config", cfg.Source).Msg("config loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stdin)
	stop()
	logger.Close()
	os.Exit(code)
}

// run wires the converter to the given streams and waits for it or for ctx,
// whichever comes first. Cancellation ends the run with 130 even while a
// prompt or the document write is still in progress.
func run(ctx context.Context, cfg config.Config, args []string, stdout io.Writer, stdin io.Reader) int {
	var conv contracts.Converter = converter.New(console.New(stdout, stdin), cfg)

	done := make(chan int, 1)
	go func() {
		done <- conv.Run(ctx, args)
	}()

	select {
	case code := <-done:
		if code == contracts.ExitInterrupted {
			fmt.Fprintln(stdout, interruptedNotice)
		}
		return code
	case <-ctx.Done():
		fmt.Fprintln(stdout, interruptedNotice)
		return contracts.ExitInterrupted
	}
}
