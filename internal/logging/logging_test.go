package logging

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledLoggersDiscard(t *testing.T) {
	Setup(false)
	t.Cleanup(func() { Setup(false) })

	assert.False(t, Enabled)
	assert.Equal(t, io.Discard, Debug.Writer())
	assert.Equal(t, io.Discard, Enum.Writer())
}

func TestSetOutputPrefixes(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, 0)
	t.Cleanup(func() { Setup(false) })

	Debug.Printf("loaded %d mounts", 3)
	Enum.Printf("took %s", "1ms")

	assert.Equal(t, "[DEBUG] loaded 3 mounts\n[ENUM] took 1ms\n", buf.String())
}
