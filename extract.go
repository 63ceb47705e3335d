package kwargs

import "fmt"

// settings is the resolved extraction mode. writeValues fills the output
// buffer; consumeKeys deletes matched keys from the mapping. Historically
// both were coupled to the presence of an output buffer; the options below
// let callers split them.
type settings struct {
	writeValues bool
	consumeKeys bool
}

type Option func(*settings)

// WithWriteValues forces value recording on or off, independent of key
// consumption. Enabling it requires an output buffer.
func WithWriteValues(write bool) Option {
	return func(s *settings) { s.writeValues = write }
}

// WithConsumeKeys forces consumption of matched keys on or off, independent
// of value recording.
func WithConsumeKeys(consume bool) Option {
	return func(s *settings) { s.consumeKeys = consume }
}

// Extract pulls the schema's keywords out of mapping and returns how many
// were found. Required keys must all be present or a *MissingKeywordError
// names the first one missing. Optional keys fill their slots when present
// and leave Unspecified when not. Unless the schema allows rest keys, any
// entry left over beyond the declared set raises *UnknownKeywordError
// listing the remainder.
//
// With an output buffer (length exactly schema.Len(), required slots first),
// matched keys are by default also deleted from the mapping. With a nil
// buffer the call runs in probe mode: values are not recorded and matched
// keys are by default left in place. Both defaults can be overridden with
// WithWriteValues and WithConsumeKeys.
//
// A nil mapping behaves as empty. Deletions already performed when an error
// is returned are not rolled back.
func Extract(mapping Mapping, schema Schema, out []Value, opts ...Option) (int, error) {
	schema.check()
	if out != nil && len(out) != schema.Len() {
		panic(fmt.Sprintf("kwargs: output buffer length %d, schema declares %d keys", len(out), schema.Len()))
	}
	mode := settings{writeValues: out != nil, consumeKeys: out != nil}
	for _, o := range opts {
		o(&mode)
	}
	if mode.writeValues && out == nil {
		panic("kwargs: WithWriteValues(true) requires an output buffer")
	}

	filled := 0
	for i, key := range schema.Required {
		val, ok := lookup(mapping, key)
		if !ok {
			return filled, NewMissingKeywordError(key)
		}
		if mode.consumeKeys {
			mapping.Delete(key)
		}
		if mode.writeValues {
			out[i] = val
		}
		filled++
	}

	if mapping != nil {
		for i, key := range schema.Optional {
			slot := len(schema.Required) + i
			val, ok := mapping.Lookup(key)
			if !ok {
				if mode.writeValues {
					out[slot] = Unspecified
				}
				continue
			}
			if mode.consumeKeys {
				mapping.Delete(key)
			}
			if mode.writeValues {
				out[slot] = val
			}
			filled++
		}
	}

	if !schema.AllowRest && mapping != nil {
		// With consumption on, matched keys are already gone, so anything
		// left is unknown. Without it, the baseline is the matched count.
		permitted := filled
		if mode.consumeKeys {
			permitted = 0
		}
		if mapping.Len() > permitted {
			for _, key := range schema.Keys() {
				mapping.Delete(key)
			}
			return filled, NewUnknownKeywordError(mapping.Keys())
		}
	}

	if mode.writeValues {
		for i := filled; i < len(out); i++ {
			out[i] = Unspecified
		}
	}

	return filled, nil
}

// lookup treats a nil mapping as empty.
func lookup(mapping Mapping, key Key) (Value, bool) {
	if mapping == nil {
		return nil, false
	}
	return mapping.Lookup(key)
}
