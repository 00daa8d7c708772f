package moneta

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

// A Producer computes a report value. [WriteReport] composes one with a file
// sink; there is no wrapping of arbitrary functions, callers pass the
// producer explicitly.
type Producer func() (any, error)

// EncodeReport invokes produce and writes its result to w as pretty-printed
// UTF-8 JSON.
func EncodeReport(w io.Writer, produce Producer) error {
	value, err := produce()
	if err != nil {
		return fmt.Errorf("report producer failed: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("cannot encode report: %w", err)
	}
	return nil
}

// WriteReport invokes produce and persists its result to path as pretty
// JSON, independent of the value's business meaning.
func WriteReport(path string, produce Producer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create report file %q: %w", path, err)
	}
	defer f.Close()

	if err := EncodeReport(f, produce); err != nil {
		return err
	}
	log.Printf("report written to %s", path)
	return nil
}
