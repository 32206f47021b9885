package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/errmsg"
	"github.com/dmitrymomot/schemakit/pkg/i18n"
	"github.com/dmitrymomot/schemakit/pkg/phone"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func newLocalizedFormatter(t *testing.T) *errmsg.Formatter {
	t.Helper()

	registry, err := i18n.NewRegistry(context.Background())
	require.NoError(t, err)
	require.NoError(t, registry.RegisterMessages("en", map[string]any{
		"string": map[string]any{
			"required": "{fieldName} is required",
			"tooShort": "{fieldName} must be at least {min} characters",
		},
		"email": map[string]any{
			"mustBeValidEmail": "{fieldName} must be a valid email address",
		},
		"phone": map[string]any{
			"mustBeValidPhone": "{fieldName} must be a valid phone number (e.g. {e164} or {national})",
		},
	}))
	return errmsg.New(registry)
}

func TestLocalizeWorkflow(t *testing.T) {
	t.Run("renders a signup form's failures through the catalog", func(t *testing.T) {
		f := newLocalizedFormatter(t)

		err := validator.Apply(
			validator.Required("email", ""),
			validator.MinLen("password", "123", 8),
			validator.Phone("contactPhone", "555-1234", phone.E164),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)

		byField := verrs.Localize(f)
		assert.Equal(t, []string{"email is required"}, byField["email"])
		assert.Equal(t, []string{"password must be at least 8 characters"}, byField["password"])
		assert.Equal(t,
			[]string{"contactPhone must be a valid phone number (e.g. +11234567890 or 1234567890)"},
			byField["contactPhone"])
	})

	t.Run("unknown template degrades instead of failing the run", func(t *testing.T) {
		f := newLocalizedFormatter(t)

		verrs := validator.ValidationErrors{{
			Field:   "nickname",
			Message: "plain fallback",
			Group:   "string",
			Key:     "neverRegistered",
		}}

		byField := verrs.Localize(f)
		assert.Equal(t, []string{"nickname is invalid"}, byField["nickname"])
	})

	t.Run("Request carries the structured failure", func(t *testing.T) {
		rule := validator.MinLen("password", "123", 8)
		req := rule.Error.Request()

		assert.Equal(t, "string", req.Group)
		assert.Equal(t, "tooShort", req.Key)
		assert.Equal(t, "password", req.Msg)
		assert.Equal(t, errmsg.FieldName, req.MsgType)
		assert.Equal(t, 8, req.Params["min"])
	})
}
