package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hhsaputraa/random-team-maker/internal/schemas"
)

// readDocument loads a JSON file, checks it against the named bundled schema
// and decodes it into dst. Schema violations are fatal.
func readDocument(path, schemaName string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	if err := schemas.ValidateDocument(schemaName, data); err != nil {
		return fmt.Errorf("input %s does not validate against %s: %w", path, schemaName, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}
	return nil
}

// writeDocument writes v as indented JSON to path, or to stdout when path is
// empty. The written document is checked against the named schema; a
// mismatch is reported as a warning since the output has already been produced.
func writeDocument(stdout io.Writer, path, schemaName string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		if _, err := fmt.Fprintln(stdout, string(jsonBytes)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if schemaName == "" {
		return nil
	}
	if err := schemas.ValidateDocument(schemaName, jsonBytes); err != nil {
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &schemaLoadErr) {
			logger.Warn("could not validate output against schema (schema loading failed)", "schema", schemaName, "error", err)
		} else {
			logger.Warn("output does not validate against schema", "schema", schemaName, "error", err)
		}
	}
	return nil
}
