package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		id := Anonymous()
		assert.False(t, id.IsAuthenticated())
		uid, ok := id.UserID()
		assert.False(t, ok)
		assert.Equal(t, uuid.Nil, uid)
		assert.Equal(t, Identity{}, id)
	})

	t.Run("authenticated", func(t *testing.T) {
		uid := uuid.New()
		id := Authenticated(uid, "kari@example.no", "Kari")
		assert.True(t, id.IsAuthenticated())
		got, ok := id.UserID()
		assert.True(t, ok)
		assert.Equal(t, uid, got)
		assert.Equal(t, "kari@example.no", id.Email())
		assert.Equal(t, "Kari", id.Name())
	})
}
