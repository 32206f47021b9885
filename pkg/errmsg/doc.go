// Package errmsg renders validation failures into user-facing, locale-aware
// strings. It is the single choke point between validation rules and the
// message catalog: rules describe a failure structurally (group, key, field
// label, interpolation params) and this package turns that into text.
//
// Two modes exist. FieldName mode looks up a template by "{group}.{key}" in an
// injected i18n.Registry and interpolates the field label plus any params into
// it. Message mode is the escape hatch: the caller's string is returned
// verbatim with no lookup and no interpolation.
//
// A broken error message must never become a broken validation run, so a
// missing template degrades to a generic "<label> is invalid" string instead
// of erroring. The only hard failure is a FormatRequest with a MsgType
// outside the enum, which returns ErrInvalidRequest; that is a programmer
// error in the calling rule, not something to swallow.
//
// # Usage
//
//	f := errmsg.New(registry)
//
//	out, err := f.Format(errmsg.FormatRequest{
//		Group:   "phone",
//		Key:     "mustBeValidPhone",
//		Msg:     "Contact Phone",
//		MsgType: errmsg.FieldName,
//		Params:  map[string]any{"e164": "+11234567890"},
//	})
//
// The package holds no state of its own and is safe for concurrent use.
package errmsg
