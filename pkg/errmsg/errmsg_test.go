package errmsg_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/errmsg"
	"github.com/dmitrymomot/schemakit/pkg/i18n"
)

func newFormatter(t *testing.T) *errmsg.Formatter {
	t.Helper()

	registry, err := i18n.NewRegistry(context.Background())
	require.NoError(t, err)
	require.NoError(t, registry.RegisterMessages("en", map[string]any{
		"string": map[string]any{
			"required": "{fieldName} is required",
			"tooShort": "{fieldName} must be at least {min} characters",
		},
		"phone": map[string]any{
			"mustBeValidPhone": "{fieldName} must be a valid phone number (e.g. {e164} or {national})",
		},
	}))
	require.NoError(t, registry.RegisterMessages("es", map[string]any{
		"string": map[string]any{
			"required": "{fieldName} es obligatorio",
		},
	}))
	return errmsg.New(registry)
}

func TestFormat(t *testing.T) {
	t.Run("renders field label into template", func(t *testing.T) {
		f := newFormatter(t)

		got, err := f.Format(errmsg.FormatRequest{
			Group:   "string",
			Key:     "required",
			Msg:     "Email",
			MsgType: errmsg.FieldName,
		})
		require.NoError(t, err)
		assert.Equal(t, "Email is required", got)
	})

	t.Run("interpolates params alongside field label", func(t *testing.T) {
		f := newFormatter(t)

		got, err := f.Format(errmsg.FormatRequest{
			Group:   "string",
			Key:     "tooShort",
			Msg:     "Password",
			MsgType: errmsg.FieldName,
			Params:  map[string]any{"min": 5},
		})
		require.NoError(t, err)
		assert.Equal(t, "Password must be at least 5 characters", got)
	})

	t.Run("formats end-to-end phone message", func(t *testing.T) {
		f := newFormatter(t)

		got, err := f.Format(errmsg.FormatRequest{
			Group:   "phone",
			Key:     "mustBeValidPhone",
			Msg:     "Contact Phone",
			MsgType: errmsg.FieldName,
			Params: map[string]any{
				"e164":     "+11234567890",
				"national": "1234567890",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Contact Phone must be a valid phone number (e.g. +11234567890 or 1234567890)", got)
	})

	t.Run("message mode bypasses lookup and interpolation", func(t *testing.T) {
		f := newFormatter(t)

		got, err := f.Format(errmsg.FormatRequest{
			Group:   "nonsense-group",
			Key:     "nonsense-key",
			Msg:     "Custom error with {fieldName} left alone",
			MsgType: errmsg.Message,
			Params:  map[string]any{"fieldName": "ignored"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Custom error with {fieldName} left alone", got)
	})

	t.Run("missing template degrades to generic message", func(t *testing.T) {
		f := newFormatter(t)

		got, err := f.Format(errmsg.FormatRequest{
			Group:   "string",
			Key:     "doesNotExist",
			Msg:     "Email",
			MsgType: errmsg.FieldName,
		})
		require.NoError(t, err)
		assert.Equal(t, "Email is invalid", got)
	})

	t.Run("does not mutate caller params", func(t *testing.T) {
		f := newFormatter(t)

		params := map[string]any{"min": 5}
		_, err := f.Format(errmsg.FormatRequest{
			Group:   "string",
			Key:     "tooShort",
			Msg:     "Password",
			MsgType: errmsg.FieldName,
			Params:  params,
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"min": 5}, params)
	})

	t.Run("rejects unknown message type", func(t *testing.T) {
		f := newFormatter(t)

		_, err := f.Format(errmsg.FormatRequest{
			Msg:     "Email",
			MsgType: errmsg.MsgType(42),
		})
		assert.ErrorIs(t, err, errmsg.ErrInvalidRequest)
	})
}

func TestFormatLocale(t *testing.T) {
	t.Run("uses the requested locale", func(t *testing.T) {
		f := newFormatter(t)

		got, err := f.FormatLocale("es", errmsg.FormatRequest{
			Group:   "string",
			Key:     "required",
			Msg:     "Email",
			MsgType: errmsg.FieldName,
		})
		require.NoError(t, err)
		assert.Equal(t, "Email es obligatorio", got)
	})

	t.Run("falls back to fallback locale for missing keys", func(t *testing.T) {
		f := newFormatter(t)

		got, err := f.FormatLocale("es", errmsg.FormatRequest{
			Group:   "string",
			Key:     "tooShort",
			Msg:     "Password",
			MsgType: errmsg.FieldName,
			Params:  map[string]any{"min": 8},
		})
		require.NoError(t, err)
		assert.Equal(t, "Password must be at least 8 characters", got)
	})

	t.Run("message mode bypasses locale entirely", func(t *testing.T) {
		f := newFormatter(t)

		got, err := f.FormatLocale("es", errmsg.FormatRequest{
			Msg:     "verbatim",
			MsgType: errmsg.Message,
		})
		require.NoError(t, err)
		assert.Equal(t, "verbatim", got)
	})

	t.Run("rejects unknown message type", func(t *testing.T) {
		f := newFormatter(t)

		_, err := f.FormatLocale("es", errmsg.FormatRequest{MsgType: errmsg.MsgType(-1)})
		assert.ErrorIs(t, err, errmsg.ErrInvalidRequest)
	})
}
