package mood

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentary_Buckets(t *testing.T) {
	assert.Contains(t, Commentary(3.0), "cheer up")
	assert.Contains(t, Commentary(7.0), "chill out")
	assert.Equal(t, neutralCommentary, Commentary(5.0))

	assert.Contains(t, Commentary(MinValue), "cheer up")
	assert.Contains(t, Commentary(MaxValue), "chill out")
	assert.Contains(t, Commentary(4.999), "cheer up")
	assert.Contains(t, Commentary(5.001), "chill out")
}

func TestFormatResult(t *testing.T) {
	out := FormatResult(1, 3.0)
	assert.Equal(t, "1 row inserted - cheer up, tomorrow is a new day", out)
}

func TestFormatFailure(t *testing.T) {
	out := FormatFailure(errors.New("disk I/O error"))
	assert.Equal(t, "update failed: disk I/O error", out)
}
