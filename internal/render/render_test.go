package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	data := map[string]string{"word": "perro", "meaning": "dog"}

	assert.Equal(t, "perro = dog", Render("{{word}} = {{meaning}}", data))
	assert.Equal(t, "perro", Render("{{ word }}", data), "placeholder names are trimmed")
	assert.Equal(t, "", Render("{{missing}}", data), "unknown fields render empty")
	assert.Equal(t, "plain text", Render("plain text", data))
}

func TestRenderUnparseable(t *testing.T) {
	assert.Equal(t, "", Render("{{never closed", nil))
}

func TestFields(t *testing.T) {
	faces := []string{
		"{{word}} and {{meaning}}",
		"{{meaning}} again, plus {{ hint }}",
		"{{}} stays out",
	}

	assert.Equal(t, []string{"word", "meaning", "hint"}, Fields(faces))
}

func TestFieldsEmpty(t *testing.T) {
	assert.Empty(t, Fields([]string{"no placeholders here"}))
	assert.Empty(t, Fields(nil))
}
