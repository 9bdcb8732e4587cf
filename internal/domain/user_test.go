package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	id := uuid.New()

	user, err := NewUser(id, " learner@example.com ", "Kari")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "learner@example.com", user.Email)
	assert.Equal(t, "Kari", user.Name)
	assert.False(t, user.CreatedAt.IsZero())

	generated, err := NewUser(uuid.Nil, "learner@example.com", "")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, generated.ID)

	_, err = NewUser(id, "", "")
	assert.Equal(t, ErrEmptyEmail, err)

	_, err = NewUser(id, "invalidemail", "")
	assert.Equal(t, ErrInvalidEmail, err)
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name string
		user User
		want error
	}{
		{"valid", User{ID: uuid.New(), Email: "a@b.no"}, nil},
		{"nil id", User{Email: "a@b.no"}, ErrEmptyUserID},
		{"empty email", User{ID: uuid.New()}, ErrEmptyEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Validate())
		})
	}
}

func TestValidateEmailFormat(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last@sub.example.no", true},
		{"@example.com", false},
		{"user@", false},
		{"user@.com", false},
		{"user@example.", false},
		{"user@example", false},
		{"user@@example.com", false},
		{"plainaddress", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, validateEmailFormat(tt.email))
		})
	}
}
