package encryption

import (
	"fmt"
	"strings"

	"github.com/idelchi/gocaesar/pkg/caesar"
)

// FormatCandidates renders every candidate on its own "key NN:" line, framed by
// header and footer lines naming the source.
func FormatCandidates(name string, candidates []caesar.Candidate) string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "------ %d candidate plaintexts for %s ------\n", len(candidates), name)

	for _, c := range candidates {
		fmt.Fprintf(&buf, "key %2d: %s", c.Key, c.Text)

		if !strings.HasSuffix(c.Text, "\n") {
			buf.WriteByte('\n')
		}
	}

	fmt.Fprintf(&buf, "------ end of candidates for %s ------\n", name)

	return buf.String()
}
