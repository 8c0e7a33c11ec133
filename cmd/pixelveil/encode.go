package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	pixelveil "github.com/pixelveil/pixelveil-go"
	"github.com/pixelveil/pixelveil-go/internal/imaging"
)

// NewEncodeCommand creates the encode subcommand.
func NewEncodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encode [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Hide a message in one or more images",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := resolveMessage(cmd)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			if out != "" && len(args) > 1 {
				return errors.New("--out requires exactly one input file")
			}

			password, err := resolvePassword(cmd, true)
			if err != nil {
				return err
			}

			parallel, _ := cmd.Flags().GetInt("parallel")

			var g errgroup.Group
			g.SetLimit(parallel)

			for _, path := range args {
				g.Go(func() error {
					dst := out
					if dst == "" {
						dst = outputName(path)
					}
					if err := encodeFile(path, dst, message, password); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", path, dst)
					return nil
				})
			}

			return g.Wait()
		},
	}

	cmd.Flags().StringP("message", "m", "", "Message to hide")
	cmd.Flags().String("message-file", "", "Read the message from a file instead")
	cmd.Flags().StringP("out", "o", "", "Output path (single input file only)")

	return cmd
}

func resolveMessage(cmd *cobra.Command) (string, error) {
	message, _ := cmd.Flags().GetString("message")
	messageFile, _ := cmd.Flags().GetString("message-file")

	switch {
	case message != "" && messageFile != "":
		return "", errors.New("--message and --message-file are mutually exclusive")
	case messageFile != "":
		data, err := os.ReadFile(messageFile)
		if err != nil {
			return "", fmt.Errorf("reading message file: %w", err)
		}
		return string(data), nil
	case message != "":
		return message, nil
	default:
		return "", errors.New("a message is required (--message or --message-file)")
	}
}

// outputName derives the destination path for an input image:
// photo.jpg becomes photo.veil.png.
func outputName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".veil.png"
}

func encodeFile(src, dst, message, password string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := imaging.Decode(in)
	if err != nil {
		return err
	}

	pix, width, height, err := imaging.Flatten(img)
	if err != nil {
		return err
	}

	encoded, err := pixelveil.Encode(pix, message, password, pixelveil.WithInPlace())
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if err := imaging.EncodePNG(out, encoded, width, height); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}

	return out.Close()
}
