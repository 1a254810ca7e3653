package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bobg/propnet"
	"github.com/bobg/propnet/internal/netfile"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Run a network and report its conclusions",
		Long: `Run builds the network described in FILE and applies its phases in
order. After each phase it prints the phase's reported cells. A file with
no phases is run once and every cell is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := netfile.Load(args[0])
			if err != nil {
				return err
			}
			net, err := f.Build(opts.networkOptions()...)
			if err != nil {
				return err
			}
			opts.logger.Info("built network", zap.Stringer("network", net))
			return run(cmd.OutOrStdout(), f, net)
		},
	}
}

func run(w io.Writer, f *netfile.File, net *propnet.Network) error {
	if len(f.Phases) == 0 {
		if err := net.Run(); err != nil {
			return err
		}
		for _, c := range net.Cells() {
			r := netfile.Result{Cell: c.Name, Content: c.Content()}
			fmt.Fprintln(w, r)
		}
		return nil
	}

	for i, p := range f.Phases {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s\n", p.Name)
		results, err := f.Apply(net, p)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Fprintln(w, r)
		}
	}
	return nil
}
