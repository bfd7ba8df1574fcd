package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenMessageSQLi(t *testing.T) {
	hit := ScreenMessage("' OR 1=1 --")
	require.NotNil(t, hit)
	assert.True(t, hit.IsSQLi)
	assert.NotEmpty(t, hit.Fingerprint)
}

func TestScreenMessageXSS(t *testing.T) {
	hit := ScreenMessage(`<script>alert(document.cookie)</script>`)
	require.NotNil(t, hit)
	assert.True(t, hit.IsXSS)
}

func TestScreenMessageCleanInput(t *testing.T) {
	for _, msg := range []string{
		"What services do you offer?",
		"How much does a website cost?",
		"آپ کی کمپنی کا نام کیا ہے؟",
		"",
	} {
		assert.Nil(t, ScreenMessage(msg), "message %q should be clean", msg)
	}
}
