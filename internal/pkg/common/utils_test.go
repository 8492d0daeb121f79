package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	first := HashString("What made you smile today?")
	second := HashString("What made you smile today?")
	assert.Equal(t, first, second, "same input always yields the same digest")
	assert.Len(t, first, 40)
	assert.NotEqual(t, first, HashString("What made you smile yesterday?"))
}

func TestSplitCommaList(t *testing.T) {
	assert.Nil(t, SplitCommaList(""))
	assert.Equal(t, []string{"a", "b"}, SplitCommaList("a,b"))
	assert.Equal(t, []string{"a", "b"}, SplitCommaList(" a , , b "))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Dedupe(nil))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.5, 0, 1))
	assert.Equal(t, 0.3, Clamp(0.3, 0, 1))
}

func TestExtractJSONObject(t *testing.T) {
	fenced := "```json\n{\"a\":1}\n```"
	assert.Equal(t, `{"a":1}`, ExtractJSONObject(fenced))
	assert.Equal(t, `{"a":1}`, ExtractJSONObject(`{"a":1}`))
	assert.Equal(t, "no braces here", ExtractJSONObject("no braces here"))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", TruncateForLog("short", 10))
	assert.Equal(t, "abcde...", TruncateForLog("abcdefghij", 5))
}
