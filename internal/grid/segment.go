package grid

import (
	"regexp"
	"strings"
)

// ClauseMarks are the punctuation marks that end a clause.
const ClauseMarks = "。！？，；"

var clausePattern = regexp.MustCompile(`[^` + ClauseMarks + `]+[` + ClauseMarks + `]+`)

var newlines = strings.NewReplacer("\r", "", "\n", "")

// stripNewlines removes line breaks so they never produce rows of their own.
func stripNewlines(s string) string {
	return newlines.Replace(s)
}

// Segment splits poem content into clauses, each ending with its run of
// punctuation marks. Content without any terminated clause yields
// ErrNoContent.
func Segment(content string) ([]string, error) {
	clauses := clausePattern.FindAllString(stripNewlines(content), -1)
	if len(clauses) == 0 {
		return nil, ErrNoContent
	}
	return clauses, nil
}
