package agents

import (
	"regexp"
	"strings"
)

var (
	fencedRE    = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	codeBlockRE = regexp.MustCompile("(?s)```python(.*?)```")
)

// extractTagged returns the content of the first region delimited by the
// open/close tag pair.
func extractTagged(response, open, close string) (string, bool) {
	start := strings.Index(response, open)
	if start < 0 {
		return "", false
	}
	rest := response[start+len(open):]
	end := strings.Index(rest, close)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// extractFenced returns the content of the first generic fenced region.
// Single quotes are normalized to double quotes to tolerate loosely
// formatted model output.
func extractFenced(response string) (string, bool) {
	m := fencedRE.FindStringSubmatch(response)
	if m == nil {
		return "", false
	}
	return strings.ReplaceAll(m[1], "'", "\""), true
}

// extractCodeBlocks returns the contents of all complete fenced regions
// tagged as executable source. hasFence reports whether any fence exists
// at all; hasTag whether the python tag appears. An unclosed tagged block
// (truncated generation) yields hasTag with zero blocks.
func extractCodeBlocks(response string) (blocks []string, hasFence, hasTag bool) {
	if !strings.Contains(response, "```") {
		return nil, false, false
	}
	hasTag = strings.Contains(response, "```python")
	for _, m := range codeBlockRE.FindAllStringSubmatch(response, -1) {
		blocks = append(blocks, m[1])
	}
	return blocks, true, hasTag
}
