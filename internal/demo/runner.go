package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/DjordjeVuckovic/strsplit/pkg/strsplit"
)

// Run prints one line per case to w.
func Run(w io.Writer, cases []Case) error {
	for _, c := range cases {
		d, err := strsplit.ParseDelimiter(c.Delimiter)
		if err != nil {
			return fmt.Errorf("case %q: %w", c.Name, err)
		}

		switch c.Mode {
		case ModeUntil:
			r, ok := d.(strsplit.Rune)
			if !ok {
				return fmt.Errorf("case %q: until mode needs a rune delimiter", c.Name)
			}
			_, err = fmt.Fprintf(w, "%s = %q\n", c.Name, strsplit.UntilRune(c.Input, rune(r)))
		default:
			tokens := strsplit.Collect(c.Input, d)
			slog.Debug("Split case", "name", c.Name, "tokens", len(tokens))
			_, err = fmt.Fprintf(w, "%s = %q\n", c.Name, tokens)
		}
		if err != nil {
			return fmt.Errorf("write case %q: %w", c.Name, err)
		}
	}
	return nil
}
