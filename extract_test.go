package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTagged(t *testing.T) {
	text, ok := extractTagged("call: <tool_call>{\"name\":\"f\"}</tool_call> done", "<tool_call>", "</tool_call>")
	require.True(t, ok)
	assert.Equal(t, `{"name":"f"}`, text)

	_, ok = extractTagged("no tags here", "<tool_call>", "</tool_call>")
	assert.False(t, ok)

	// Open without close is not a tagged region.
	_, ok = extractTagged("<tool_call>{...}", "<tool_call>", "</tool_call>")
	assert.False(t, ok)
}

func TestExtractFenced_NormalizesQuotes(t *testing.T) {
	text, ok := extractFenced("```json\n{'name': 'f'}\n```")
	require.True(t, ok)
	assert.JSONEq(t, `{"name": "f"}`, text)
}

func TestExtractFenced_Untagged(t *testing.T) {
	text, ok := extractFenced("before ```\n{\"a\": 1}\n``` after")
	require.True(t, ok)
	assert.JSONEq(t, `{"a": 1}`, text)
}

func TestExtractCodeBlocks(t *testing.T) {
	blocks, hasFence, hasTag := extractCodeBlocks("```python\nprint(1)\n```")
	require.True(t, hasFence)
	require.True(t, hasTag)
	require.Len(t, blocks, 1)
	assert.Equal(t, "\nprint(1)\n", blocks[0])

	blocks, hasFence, hasTag = extractCodeBlocks("plain text")
	assert.False(t, hasFence)
	assert.False(t, hasTag)
	assert.Empty(t, blocks)

	// Fenced but not tagged as python: fence seen, no tag, no blocks.
	blocks, hasFence, hasTag = extractCodeBlocks("```\nprint(1)\n```")
	assert.True(t, hasFence)
	assert.False(t, hasTag)
	assert.Empty(t, blocks)

	// Tagged but never closed: tag seen, no complete block.
	blocks, hasFence, hasTag = extractCodeBlocks("```python\nprint(1)")
	assert.True(t, hasFence)
	assert.True(t, hasTag)
	assert.Empty(t, blocks)

	blocks, hasFence, hasTag = extractCodeBlocks("```python\na = 1\n```\ntext\n```python\nprint(a)\n```")
	assert.True(t, hasFence)
	assert.True(t, hasTag)
	assert.Len(t, blocks, 2)
}
