package dump

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/discoursekit/disco/stac"
)

// EDUInput writes the EDU metadata table for a corpus: one
// tab-separated line per unit with its id, speaker, text, dialogue
// grouping and character span. Embedded tabs and newlines in the text
// are replaced by spaces to keep the table one line per unit.
func EDUInput(w io.Writer, dialogues []*stac.Dialogue) error {
	bw := bufio.NewWriter(w)

	for _, d := range dialogues {
		for _, edu := range d.Edus {
			text := strings.NewReplacer("\t", " ", "\n", " ").Replace(edu.Text)
			_, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\t%d\n",
				edu.ID, edu.Speaker, text, d.Name, edu.Start, edu.End)
			if err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
