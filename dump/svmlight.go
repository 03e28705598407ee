// Package dump writes extraction results in the formats downstream
// learners read: SVMLight sparse matrices, vocabulary listings and
// EDU input tables.
package dump

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/discoursekit/disco/learn"
)

// LabelsComment renders the label index map as the comment line
// conventionally placed at the top of an SVMLight file, listing label
// names in index order.
func LabelsComment(labels learn.LabelIndex) string {
	return "labels: " + strings.Join(labels.Names(), " ")
}

// SVMLight writes one `label idx:val ...` line per instance, zipping
// the feature rows with the label sequence. Both sequences are
// consumed; they must be positionally aligned and of equal length.
// A non-empty comment is written first, prefixed with '#'.
func SVMLight(w io.Writer, rows iter.Seq[learn.SparseRow], labels iter.Seq[int], comment string) error {
	bw := bufio.NewWriter(w)

	if comment != "" {
		if _, err := fmt.Fprintf(bw, "# %s\n", comment); err != nil {
			return err
		}
	}

	nextLabel, stop := iter.Pull(labels)
	defer stop()

	for row := range rows {
		label, ok := nextLabel()
		if !ok {
			return fmt.Errorf("svmlight: ran out of labels with feature rows remaining")
		}

		bw.WriteString(strconv.Itoa(label))
		for _, f := range row {
			fmt.Fprintf(bw, " %d:%s", f.Index, strconv.FormatFloat(f.Value, 'g', -1, 64))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	if _, ok := nextLabel(); ok {
		return fmt.Errorf("svmlight: ran out of feature rows with labels remaining")
	}

	return bw.Flush()
}
