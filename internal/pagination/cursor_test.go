package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"mnemo/internal/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	id := uuid.New()

	t.Run("uint64", func(t *testing.T) {
		token := pagination.EncodeCursor(uint64(42), id)

		key, gotID, ok := pagination.DecodeCursor[uint64](token)
		require.True(t, ok)
		assert.Equal(t, uint64(42), key)
		assert.Equal(t, id, gotID)
	})

	t.Run("int64", func(t *testing.T) {
		token := pagination.EncodeCursor(int64(-7), id)

		key, gotID, ok := pagination.DecodeCursor[int64](token)
		require.True(t, ok)
		assert.Equal(t, int64(-7), key)
		assert.Equal(t, id, gotID)
	})

	t.Run("string", func(t *testing.T) {
		token := pagination.EncodeCursor("updated-at-key", id)

		key, gotID, ok := pagination.DecodeCursor[string](token)
		require.True(t, ok)
		assert.Equal(t, "updated-at-key", key)
		assert.Equal(t, id, gotID)
	})

	t.Run("time", func(t *testing.T) {
		at := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)
		token := pagination.EncodeCursor(at, id)

		key, gotID, ok := pagination.DecodeCursor[time.Time](token)
		require.True(t, ok)
		assert.True(t, at.Equal(key))
		assert.Equal(t, id, gotID)
	})
}

func TestCursorOpaque(t *testing.T) {
	token := pagination.EncodeCursor(uint64(1), uuid.New())
	assert.NotContains(t, token, "|")
	assert.NotContains(t, token, "=")
}

func TestDecodeCursorMalformed(t *testing.T) {
	encode := func(plain string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(plain))
	}

	cases := map[string]string{
		"empty":         "",
		"blank":         "   ",
		"not base64":    "%%%not-base64%%%",
		"no delimiter":  encode("just-a-key"),
		"extra parts":   encode("1|2|" + uuid.NewString()),
		"bad uuid":      encode("1|not-a-uuid"),
		"bad key":       encode("not-a-number|" + uuid.NewString()),
		"negative uint": encode("-5|" + uuid.NewString()),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			key, id, ok := pagination.DecodeCursor[uint64](token)
			assert.False(t, ok)
			assert.Equal(t, uint64(0), key)
			assert.Equal(t, uuid.Nil, id)
		})
	}
}

func TestDecodeCursorUnsupportedKeyType(t *testing.T) {
	token := pagination.EncodeCursor(uint64(1), uuid.New())

	_, _, ok := pagination.DecodeCursor[float64](token)
	assert.False(t, ok)
}
