package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	pixelveil "github.com/pixelveil/pixelveil-go"
	"github.com/pixelveil/pixelveil-go/internal/imaging"
)

// NewDecodeCommand creates the decode subcommand.
func NewDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decode [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Recover hidden messages from images",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := resolvePassword(cmd, false)
			if err != nil {
				return err
			}

			parallel, _ := cmd.Flags().GetInt("parallel")

			var g errgroup.Group
			g.SetLimit(parallel)

			// Serialize output so messages from parallel workers do not
			// interleave.
			var mu sync.Mutex

			for _, path := range args {
				g.Go(func() error {
					message, err := decodeFile(path, password)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}

					mu.Lock()
					defer mu.Unlock()
					if len(args) > 1 {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, message)
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), message)
					}
					return nil
				})
			}

			return g.Wait()
		},
	}
}

func decodeFile(path, password string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer in.Close()

	img, err := imaging.Decode(in)
	if err != nil {
		return "", err
	}

	pix, _, _, err := imaging.Flatten(img)
	if err != nil {
		return "", err
	}

	return pixelveil.Decode(pix, password)
}
