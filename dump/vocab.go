package dump

import (
	"bufio"
	"fmt"
	"io"

	"github.com/discoursekit/disco/learn"
)

// Vocabulary writes one `feature<TAB>column` line per vocabulary
// entry, in column order. The vocabulary must be fully built, ie. the
// feature row sequence it backs must have been consumed first.
func Vocabulary(w io.Writer, vocab *learn.Vocabulary) error {
	bw := bufio.NewWriter(w)

	for col, name := range vocab.Names() {
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", name, col); err != nil {
			return err
		}
	}

	return bw.Flush()
}
