package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// passwordEnvVar names the environment variable consulted before prompting.
const passwordEnvVar = "PIXELVEIL_PASSWORD"

// resolvePassword returns the password from the flag, the environment, or
// an interactive prompt, in that order. confirm asks for the password twice,
// which encode uses to catch typos before they make a message unrecoverable.
func resolvePassword(cmd *cobra.Command, confirm bool) (string, error) {
	if flag, err := cmd.Flags().GetString("password"); err == nil && flag != "" {
		return flag, nil
	}

	if env := os.Getenv(passwordEnvVar); env != "" {
		return env, nil
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return "", err
	}

	if confirm {
		again, err := readPassword("Confirm password: ")
		if err != nil {
			return "", err
		}
		if !bytes.Equal(password, again) {
			return "", errors.New("passwords do not match")
		}
	}

	return string(password), nil
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		return password, err
	}

	// STDIN is piped; read one line instead of echoless input.
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("cannot read password: %w (set %s when piping input)", err, passwordEnvVar)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
