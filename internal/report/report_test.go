package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palinview/internal/logging"
	"palinview/internal/palindrome"
	"palinview/internal/presenter"
	"palinview/internal/session"
)

func TestFromSnapshot(t *testing.T) {
	s := session.New(logging.Discard())
	r := FromSnapshot(s.SetInput("No 'x' in Nixon"))

	assert.Equal(t, Version, r.Version)
	assert.Equal(t, "noxinnixon", r.Comparison)
	assert.Equal(t, "NOXINNIXON", r.Display)
	assert.Equal(t, palindrome.Palindrome, r.Verdict)
	assert.Equal(t, uint64(1), r.Epoch)
	require.Len(t, r.Letters, 10)
	assert.Equal(t, Letter{Letter: "X", Index: 2}, r.Letters[2])
	assert.Equal(t, presenter.CaptionPalindrome, r.Caption)
}

func TestWrite(t *testing.T) {
	s := session.New(logging.Discard())
	r := FromSnapshot(s.SetInput("<b>"))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))
	assert.Contains(t, buf.String(), `"input": "<b>"`)
	assert.Contains(t, buf.String(), `"verdict": "indeterminate"`)

	var back Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, r, back)
}

func TestEmptyLettersEncodeAsArray(t *testing.T) {
	r := FromSnapshot(session.Snapshot{})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))
	assert.Contains(t, buf.String(), `"letters": []`)
}

func TestText(t *testing.T) {
	s := session.New(logging.Discard())

	out := Text(FromSnapshot(s.SetInput("Hello World")))
	assert.Equal(t, "HELLOWORLD\n😔 Not quite a palindrome... [not_palindrome]\n", out)

	out = Text(FromSnapshot(s.SetInput("")))
	assert.Contains(t, out, "(nothing to show)")
	assert.Contains(t, out, presenter.CaptionKeepTyping)
}
