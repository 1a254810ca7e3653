package main

import (
	"github.com/spf13/cobra"

	"github.com/bobg/propnet/internal/netfile"
)

func newGraphCmd(opts *options) *cobra.Command {
	var withContent bool
	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Print a network's topology as a Mermaid flowchart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := netfile.Load(args[0])
			if err != nil {
				return err
			}
			net, err := f.Build(opts.networkOptions()...)
			if err != nil {
				return err
			}
			if withContent {
				if err := net.Run(); err != nil {
					return err
				}
			}
			return netfile.WriteGraph(cmd.OutOrStdout(), net, withContent)
		},
	}
	cmd.Flags().BoolVar(&withContent, "content", false, "run the network and label cells with their content")
	return cmd
}
