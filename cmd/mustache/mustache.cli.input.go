package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsatony/go-mustache"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadData reads a data file, decoding YAML for .yaml and .yml files and
// JSON otherwise. No path means an empty context.
func loadData(path string) (mustache.Value, error) {
	if path == "" {
		return mustache.Map(nil), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return mustache.Null(), err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case DataExtYAML, DataExtYML:
		return mustache.ParseYAML(raw)
	default:
		return mustache.ParseJSON(raw)
	}
}
