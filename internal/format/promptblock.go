package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A prompt block is a `prompt: >` block scalar plus every following line that
// is blank or indented strictly deeper than the header. Blocks are swapped
// for placeholder lines before re-serialization and spliced back verbatim
// afterwards, so the emitter never rewrites free-form prompt text.

var (
	promptHeaderRe = regexp.MustCompile(`^([ \t]*)prompt:[ \t]*>[ \t]*$`)
	placeholderRe  = regexp.MustCompile(`^[ \t]*prompt: ["']@@PROMPT_BLOCK_(\d+)@@["'][ \t]*$`)
)

// extractPromptBlocks replaces every prompt block with a placeholder line and
// returns the rewritten text plus the original blocks in order. Placeholder
// indices are zero-based and strictly increasing within one extraction.
func extractPromptBlocks(text string) (string, []string) {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	var blocks []string

	for i := 0; i < len(lines); i++ {
		m := promptHeaderRe.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			continue
		}
		indent := m[1]
		end := i + 1
		for end < len(lines) && insideBlock(lines[end], indent) {
			end++
		}
		out = append(out, fmt.Sprintf("%sprompt: \"@@PROMPT_BLOCK_%d@@\"", indent, len(blocks)))
		blocks = append(blocks, strings.Join(lines[i:end], "\n"))
		i = end - 1
	}
	return strings.Join(out, "\n"), blocks
}

func insideBlock(line, headerIndent string) bool {
	if strings.TrimSpace(line) == "" {
		return true
	}
	lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
	return len(lead) > len(headerIndent)
}

// restorePromptBlocks substitutes each placeholder line with its original
// block, header line included. Lines that are not placeholders pass through
// untouched, so the call is a no-op when no blocks were extracted.
func restorePromptBlocks(text string, blocks []string) string {
	if len(blocks) == 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		m := placeholderRe.FindStringSubmatch(line)
		if m == nil {
			out = append(out, line)
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 0 || n >= len(blocks) {
			out = append(out, line)
			continue
		}
		out = append(out, blocks[n])
	}
	return strings.Join(out, "\n")
}
