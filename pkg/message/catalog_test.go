package message_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/message"
)

func TestCatalogFormat(t *testing.T) {
	t.Parallel()

	c := message.DefaultCatalog()

	assert.Equal(t, "The password must be at least 8.", c.Format("password", "min", []any{8}))
	assert.Equal(t, "The pin must be between 4 and 6 digits.", c.Format("pin", "digitsBetween", []any{4, 6}))
	assert.Equal(t, "The email field is required.", c.Format("email", "required", nil))
	assert.Equal(t, "The x field is invalid.", c.Format("x", "nope", nil))
}

func TestDefaultCatalogIsCopy(t *testing.T) {
	t.Parallel()

	c := message.DefaultCatalog()
	c["min"] = "changed"
	assert.NotEqual(t, "changed", message.DefaultCatalog()["min"])
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("overlays defaults", func(t *testing.T) {
		c, err := message.LoadCatalog(strings.NewReader("min: \":attribute needs :min chars\"\n"))
		require.NoError(t, err)
		assert.Equal(t, "name needs 3 chars", c.Format("name", "min", []any{3}))
		assert.Equal(t, "The name field is required.", c.Format("name", "required", nil))
	})

	t.Run("empty document", func(t *testing.T) {
		c, err := message.LoadCatalog(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, message.DefaultCatalog(), c)
	})

	t.Run("empty template", func(t *testing.T) {
		_, err := message.LoadCatalog(strings.NewReader("min: \"\"\n"))
		assert.ErrorIs(t, err, message.ErrInvalidCatalog)
	})

	t.Run("not a mapping", func(t *testing.T) {
		_, err := message.LoadCatalog(strings.NewReader("- a\n- b\n"))
		assert.ErrorIs(t, err, message.ErrInvalidCatalog)
	})
}
