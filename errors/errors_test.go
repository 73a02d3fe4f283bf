package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *PlatformError
		want string
	}{
		{
			name: "code and message",
			err:  New(CodeNotFound, "rule not registered"),
			want: "NOT_FOUND: rule not registered",
		},
		{
			name: "sorted context",
			err: &PlatformError{
				Code:    CodeParseFailed,
				Message: "syntax error",
				Context: map[string]interface{}{"line": 3, "file": "a.js"},
			},
			want: "PARSE_FAILED: syntax error (file=a.js, line=3)",
		},
		{
			name: "with cause",
			err: &PlatformError{
				Code:    CodeIO,
				Message: "read failed",
				Cause:   fs.ErrNotExist,
			},
			want: "IO_ERROR: read failed: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeIO, "x"))
		assert.NoError(t, WrapWithContext(nil, CodeIO, "x", nil))
	})

	t.Run("cause is preserved", func(t *testing.T) {
		err := WrapWithContext(fs.ErrNotExist, CodeNotFound, "missing", map[string]interface{}{"path": "a.js"})
		require.Error(t, err)
		assert.True(t, Is(err, fs.ErrNotExist))
		assert.Equal(t, CodeNotFound, GetCode(err))

		var pe *PlatformError
		require.True(t, As(err, &pe))
		assert.Equal(t, "a.js", pe.Context["path"])
	})

	t.Run("nested codes are found", func(t *testing.T) {
		inner := New(CodeParseFailed, "bad token")
		outer := Wrap(inner, CodeIO, "lint failed")
		assert.Equal(t, CodeIO, GetCode(outer))
		assert.True(t, HasCode(outer, CodeParseFailed))
		assert.False(t, HasCode(outer, CodeInvalidConfig))
	})
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	assert.Equal(t, CodeUnknown, GetCode(nil))
}

func TestWithContextCopies(t *testing.T) {
	base := New(CodeInvalidInput, "bad")
	withFile := base.WithContext("file", "a.js")

	assert.Nil(t, base.Context)
	assert.Equal(t, "a.js", withFile.Context["file"])
	assert.Equal(t, "INVALID_INPUT: bad (file=a.js)", withFile.Error())
}
