package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rl1809/weaselparts/internal/adapter/client"
	"github.com/rl1809/weaselparts/internal/adapter/terminal"
	"github.com/rl1809/weaselparts/internal/core/scan"
	"github.com/rl1809/weaselparts/internal/port"
)

func scanCmd() *cobra.Command {
	var (
		remote    string
		serialDev string
		listPorts bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run a scan station on this terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listPorts {
				ports, err := terminal.ListPorts()
				if err != nil {
					return err
				}
				for _, p := range ports {
					fmt.Println(p)
				}
				return nil
			}
			if cmd.Flags().Changed("remote") {
				cfg.InventoryAddr = remote
			}
			if cmd.Flags().Changed("serial") {
				cfg.SerialPort = serialDev
			}

			// stdout is the operator display, logs go to stderr
			logCfg := zap.NewDevelopmentConfig()
			logCfg.OutputPaths = []string{"stderr"}
			if !verbose {
				logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			}
			logger, err := logCfg.Build()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			inventory, closeInventory, err := openInventory(ctx, logger)
			if err != nil {
				return err
			}
			defer closeInventory()

			out := terminal.RawWriter{W: os.Stdout}
			presenter := terminal.NewPresenter(out)
			it := scan.NewInterpreter(cfg.Scan, inventory, presenter,
				scan.WithFocus(presenter),
				scan.WithLogger(logger),
				scan.WithContext(ctx),
			)
			defer it.Close()

			if cfg.SerialPort != "" {
				src := terminal.NewSerialSource(cfg.SerialPort, cfg.SerialBaud, it, logger)
				go func() {
					if err := src.Run(ctx); err != nil {
						logger.Error("serial scanner stopped", zap.Error(err))
						stop()
					}
				}()
			}

			fmt.Fprintln(out, "Ready. Scan a barcode, Esc to dismiss, Ctrl-C to quit.")
			return terminal.NewKeyboardSource(it, presenter, out, logger).Run(ctx, os.Stdin)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "gRPC address of the inventory service")
	cmd.Flags().StringVar(&serialDev, "serial", "", "serial port of a barcode scanner")
	cmd.Flags().BoolVar(&listPorts, "list-ports", false, "list serial ports and exit")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log scanner decisions")
	return cmd
}

// openInventory dials the remote service when one is configured, otherwise it
// opens the database directly.
func openInventory(ctx context.Context, logger *zap.Logger) (port.Inventory, func(), error) {
	if cfg.InventoryAddr != "" {
		c, err := client.Dial(cfg.InventoryAddr)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using remote inventory", zap.String("addr", cfg.InventoryAddr))
		return c, func() { c.Close() }, nil
	}

	b, err := openBackend(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return b.service(cfg, logger), b.Close, nil
}
