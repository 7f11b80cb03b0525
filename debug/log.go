package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes a debug message to stderr.  Maps and slices are rendered as
// indented JSON, everything else with its default format.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, map[string]string, []any, []string:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
