package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readInput returns the contents of path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// readJSON decodes a JSON file (or stdin for "-") into dst.
func readJSON(cmd *cobra.Command, path string, dst any) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", displayName(path), err)
	}
	return nil
}

// textArg returns the single positional argument, or the contents of file
// when set. Exactly one source must be given.
func textArg(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", errors.New("pass text as an argument or --file, not both")
	case file != "":
		data, err := readInput(cmd, file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", errors.New("text argument or --file is required")
	}
}

func displayName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return strings.TrimSpace(path)
}
