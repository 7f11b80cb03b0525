package main

import (
	"fmt"
	"io"
	"os"
)

type sourceFunc func(w io.Writer, r io.Reader) error

// eachSource calls fn on each file in turn, or on in when there are no
// files.  A file that cannot be opened is reported to w and skipped.
func eachSource(w io.Writer, in io.Reader, files []string, fn sourceFunc) error {
	if len(files) == 0 {
		return fn(w, in)
	}
	for _, file := range files {
		if err := eachFile(w, file, fn); err != nil {
			return err
		}
	}
	return nil
}

func eachFile(w io.Writer, file string, fn sourceFunc) error {
	if file == "-" {
		return fn(w, os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		theLog.Debug("could not open source", "file", file, "error", err)
		_, err = fmt.Fprintf(w, "File does not exist. File:\n%s\n", file)
		return err
	}
	defer f.Close()
	if err := fn(w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}
