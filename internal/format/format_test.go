package format

import (
	"strings"
	"testing"
)

const promptDoc = `nodes:
  writer:
    type: agent
    name: writer
    prompt: >
      Write a short story about {{topic}}.

        Keep   this exact   spacing.
      End with a question.
    next:
      - reviewer
  reviewer:
    type: agent
    name: reviewer
`

func TestExtractAndRestoreRoundTrip(t *testing.T) {
	guarded, blocks := extractPromptBlocks(promptDoc)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !strings.Contains(guarded, `prompt: "@@PROMPT_BLOCK_0@@"`) {
		t.Fatalf("expected placeholder in guarded text:\n%s", guarded)
	}
	if strings.Contains(guarded, "Keep   this exact") {
		t.Fatalf("block body leaked into guarded text")
	}
	restored := restorePromptBlocks(guarded, blocks)
	if restored != promptDoc {
		t.Fatalf("round trip changed text:\n--- want ---\n%s\n--- got ---\n%s", promptDoc, restored)
	}
}

func TestExtractNumbersBlocksInOrder(t *testing.T) {
	text := strings.Join([]string{
		"a:",
		"  prompt: >",
		"    first",
		"b:",
		"  prompt: >",
		"    second",
		"",
	}, "\n")
	guarded, blocks := extractPromptBlocks(text)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	first := strings.Index(guarded, "@@PROMPT_BLOCK_0@@")
	second := strings.Index(guarded, "@@PROMPT_BLOCK_1@@")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("placeholders missing or out of order:\n%s", guarded)
	}
	if !strings.Contains(blocks[0], "first") || !strings.Contains(blocks[1], "second") {
		t.Fatalf("blocks captured out of order: %q", blocks)
	}
}

func TestBlockEndsAtShallowerIndent(t *testing.T) {
	text := strings.Join([]string{
		"  prompt: >",
		"    body line",
		"  next: [done]",
	}, "\n")
	_, blocks := extractPromptBlocks(text)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if strings.Contains(blocks[0], "next") {
		t.Fatalf("block swallowed a sibling key: %q", blocks[0])
	}
}

func TestRestoreWithNoBlocksIsNoOp(t *testing.T) {
	text := "nodes:\n  a:\n    type: agent\n"
	if got := restorePromptBlocks(text, nil); got != text {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestRestoreIgnoresOutOfRangePlaceholder(t *testing.T) {
	text := `prompt: "@@PROMPT_BLOCK_5@@"`
	if got := restorePromptBlocks(text, []string{"block"}); got != text {
		t.Fatalf("expected out-of-range placeholder to pass through, got %q", got)
	}
}

func TestRestoreAcceptsSingleQuotedPlaceholder(t *testing.T) {
	text := "prompt: '@@PROMPT_BLOCK_0@@'"
	got := restorePromptBlocks(text, []string{"prompt: >\n  hello"})
	if !strings.Contains(got, "hello") {
		t.Fatalf("expected block to be restored, got %q", got)
	}
}

func TestFormatKeepsPromptBlockVerbatim(t *testing.T) {
	out, err := Format([]byte(promptDoc), DefaultOptions())
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	wantBlock := strings.Join([]string{
		"    prompt: >",
		"      Write a short story about {{topic}}.",
		"",
		"        Keep   this exact   spacing.",
		"      End with a question.",
	}, "\n")
	if !strings.Contains(string(out), wantBlock) {
		t.Fatalf("prompt block was rewritten:\n%s", out)
	}
	if strings.Contains(string(out), "@@PROMPT_BLOCK_") {
		t.Fatalf("placeholder leaked into output:\n%s", out)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	once, err := Format([]byte(promptDoc), DefaultOptions())
	if err != nil {
		t.Fatalf("first format failed: %v", err)
	}
	twice, err := Format(once, DefaultOptions())
	if err != nil {
		t.Fatalf("second format failed: %v", err)
	}
	if string(once) != string(twice) {
		t.Fatalf("formatting is not stable:\n--- once ---\n%s\n--- twice ---\n%s", once, twice)
	}
}

func TestFormatRejectsMalformedInput(t *testing.T) {
	if _, err := Format([]byte("a: [1, 2"), DefaultOptions()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFormatNormalizesIndent(t *testing.T) {
	src := "nodes:\n    a:\n        type: agent\n        name: a\n"
	out, err := Format([]byte(src), Options{Indent: 2, Width: -1})
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if !strings.Contains(string(out), "\n  a:\n    type: agent") {
		t.Fatalf("expected two-space indent, got:\n%s", out)
	}
}
