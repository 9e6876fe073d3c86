package main

import (
	"fmt"

	"github.com/ormasoftchile/lv2lint/pkg/explain"
	"github.com/ormasoftchile/lv2lint/pkg/schema"
	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	var (
		raw   bool
		width int
		color string
	)
	cmd := &cobra.Command{
		Use:   "explain [rule]",
		Short: "Describe a port rule, or list all rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			md := explain.Index()
			if len(args) == 1 {
				var err error
				if md, err = explain.Lookup(args[0]); err != nil {
					return err
				}
			}
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), md)
				return nil
			}
			on, err := useColor(color, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), explain.Render(md, width, on))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the Markdown source")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap rendered text at this column")
	cmd.Flags().StringVar(&color, "color", "auto", "Colorize output: auto, always or never")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Export the bundle JSON Schema to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := schema.GenerateJSONSchema()
			if err != nil {
				return fmt.Errorf("generate schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
