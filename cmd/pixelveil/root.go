package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command with the shared flags.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pixelveil command [flags] files...",
		Short: "Hide encrypted messages in images",
		Long: `Hides an encrypted text message inside the least significant bits of an
image's pixels, and recovers it given the correct password. Output is
always PNG: lossy formats would destroy the hidden bits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringP("password", "p", "", "Password protecting the message (prompted for when omitted)")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of files to process in parallel")

	root.AddCommand(NewEncodeCommand(), NewDecodeCommand())

	return root
}
