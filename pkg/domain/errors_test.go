package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationError(t *testing.T) {
	t.Run("分類 sentinel と原因の両方に一致する", func(t *testing.T) {
		err := NewTransportError("invoke", "model call failed", context.DeadlineExceeded)

		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotErrorIs(t, err, ErrContent)
		assert.Contains(t, err.Error(), "model call failed")
	})

	t.Run("ラップされても分類を取り出せる", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", NewContentError("extract", "no image produced", nil))

		assert.Equal(t, KindContent, KindOf(err))
		assert.ErrorIs(t, err, ErrContent)
	})

	t.Run("分類されていないエラーは KindUnknown", func(t *testing.T) {
		assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
		assert.Equal(t, "unknown", KindUnknown.String())
	})
}

func TestCatalog(t *testing.T) {
	scene, ok := FindScene("studio")
	assert.True(t, ok)
	assert.Equal(t, "Studio Lit", scene.Name)

	channel, ok := FindChannel("linkedin")
	assert.True(t, ok)
	assert.Equal(t, "LinkedIn", channel.Name)

	tone, ok := FindTone("luxury")
	assert.True(t, ok)
	assert.Equal(t, "Luxury", tone.Name)

	_, ok = FindChannel("myspace")
	assert.False(t, ok)
}
