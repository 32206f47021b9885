package errmsg

import (
	"errors"
	"fmt"
	"maps"

	"github.com/dmitrymomot/schemakit/pkg/i18n"
)

// ErrInvalidRequest indicates a malformed FormatRequest, a bug in the calling
// code, not bad end-user input. It is the only error Format can return.
var ErrInvalidRequest = errors.New("invalid format request")

// MsgType selects how the Msg field of a FormatRequest is interpreted.
type MsgType int

const (
	// FieldName means Msg is a human field label to embed into a localized template.
	FieldName MsgType = iota
	// Message means Msg is itself the complete, final output string.
	Message
)

// FormatRequest describes one validation failure to be rendered as a
// user-facing string. Group and Key identify the template ("string" +
// "tooShort" resolves "string.tooShort"); Params supplies interpolation
// arguments. When MsgType is Message, Msg is returned verbatim and every
// other field is ignored.
type FormatRequest struct {
	Group   string
	Key     string
	Msg     string
	MsgType MsgType
	Params  map[string]any
}

// fallbackTemplate renders when the requested template exists in no loaded
// locale. A generic message beats a broken validation run.
const fallbackTemplate = "{fieldName} is invalid"

// Formatter is the stateless façade every validation rule calls to produce a
// user-facing string. It isolates callers from locale and interpolation
// mechanics. The registry is injected so tests can run isolated catalogs.
type Formatter struct {
	registry *i18n.Registry
}

// New creates a Formatter backed by the given registry.
func New(registry *i18n.Registry) *Formatter {
	return &Formatter{registry: registry}
}

// Format renders a FormatRequest into a user-facing string.
//
// Message mode returns Msg unchanged (no lookup, no interpolation); the
// caller supplied the final string. FieldName mode resolves "{Group}.{Key}"
// against the registry and interpolates Params plus an implicit fieldName
// entry carrying Msg, so templates can embed the caller's field label:
//
//	out, _ := f.Format(errmsg.FormatRequest{
//		Group:   "string",
//		Key:     "tooShort",
//		Msg:     "Password",
//		MsgType: errmsg.FieldName,
//		Params:  map[string]any{"min": 5},
//	})
//	// With template "{fieldName} must be at least {min} characters":
//	// out == "Password must be at least 5 characters"
//
// A template missing from every loaded locale degrades to a generic
// "<label> is invalid" string rather than an error. The only returned error
// is ErrInvalidRequest for a MsgType outside the enum.
func (f *Formatter) Format(req FormatRequest) (string, error) {
	return f.FormatLocale("", req)
}

// FormatLocale is Format with an explicit locale override, bypassing the
// registry's current locale. Useful when rendering messages for a request
// whose locale differs from the process default. An empty locale means the
// registry's current locale, which is how Format delegates here.
func (f *Formatter) FormatLocale(locale string, req FormatRequest) (string, error) {
	switch req.MsgType {
	case Message:
		return req.Msg, nil

	case FieldName:
		params := make(map[string]any, len(req.Params)+1)
		maps.Copy(params, req.Params)
		params["fieldName"] = req.Msg

		key := req.Group + "." + req.Key
		if !f.registry.HasMessage(key, locale) {
			return i18n.Interpolate(fallbackTemplate, params), nil
		}
		return f.registry.Message(key, params, locale), nil

	default:
		return "", fmt.Errorf("%w: unknown message type %d", ErrInvalidRequest, req.MsgType)
	}
}
