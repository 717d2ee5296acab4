package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/classroomhub/hub-server/internal/errors"
)

type createComment struct {
	Text  string `json:"text" validate:"required,min=1,max=2000"`
	Level string `json:"level" validate:"omitempty,oneof=E G S NS NextSteps END"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, v.Validate(createComment{Text: "hello", Level: "G"}))
	})

	t.Run("missing required field", func(t *testing.T) {
		err := v.Validate(createComment{})
		require.Error(t, err)

		var de *domainerrors.Error
		require.ErrorAs(t, err, &de)
		assert.Equal(t, domainerrors.CodeValidation, de.Code)

		details, ok := de.Details.(map[string]string)
		require.True(t, ok)
		assert.Equal(t, "is required", details["text"])
	})

	t.Run("uses json field names", func(t *testing.T) {
		err := v.Validate(createComment{Text: "ok", Level: "A+"})
		require.Error(t, err)

		var de *domainerrors.Error
		require.ErrorAs(t, err, &de)
		details := de.Details.(map[string]string)
		assert.Contains(t, details, "level")
	})
}
