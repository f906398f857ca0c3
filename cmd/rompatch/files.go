package main

import (
	"fmt"
	"io"
	"os"
)

func readFile(path string) ([]byte, error) {
	var (
		f   *os.File
		err error
	)
	if path != "-" {
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	d, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func writeFile(path string, b []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}
