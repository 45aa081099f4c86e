// Package jsonstream extracts a single scalar value at a dot path from a
// JSON stream, without decoding the whole document into memory.
package jsonstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

type Digger struct {
	dec  *json.Decoder
	keys []string
	// keys already consumed, for error messages
	trail []string
}

func NewDigger(stream io.Reader, path string) (*Digger, error) {
	if !strings.HasPrefix(path, ".") {
		return nil, errors.New(`path must start with the dot character "."`)
	}

	if strings.HasSuffix(path, ".") {
		return nil, errors.New(`path must not end with the dot character "."`)
	}

	keys := strings.Split(path, ".")[1:]

	return &Digger{dec: json.NewDecoder(stream), keys: keys}, nil
}

func (d *Digger) at() string {
	return "." + strings.Join(d.trail, ".")
}

// Dig walks the stream down the path and returns the scalar found there.
// It fails if any intermediate value is not an object, if a key is missing,
// or if the final value is an object or array.
func (d *Digger) Dig(ctx context.Context) (value any, err error) {
	for _, key := range d.keys {
		if err = d.enter(ctx, key); err != nil {
			return nil, err
		}
	}

	return d.scalar()
}

// enter consumes tokens until the value of key becomes the next token.
func (d *Digger) enter(ctx context.Context, key string) (err error) {
	var t json.Token

	if t, err = d.dec.Token(); err != nil {
		return err
	}

	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("the value at path %q is not a JSON object", d.at())
	}

	d.trail = append(d.trail, key)

	done := ctx.Done()

	for d.dec.More() {
		select {
		case <-done:
			return fmt.Errorf("failed to reach target key %q in time: %w", d.at(), context.Cause(ctx))
		default:
		}

		if t, err = d.dec.Token(); err != nil {
			return err
		}

		// Inside an object, tokens alternate between key strings and
		// values; skipValue keeps the alternation in step.
		name, ok := t.(string)
		if !ok {
			return fmt.Errorf("malformed JSON object at path %q", d.at())
		}

		if name == key {
			return nil
		}

		if err = d.skipValue(); err != nil {
			return err
		}
	}

	return fmt.Errorf("failed to find target key %q", d.at())
}

// skipValue consumes exactly one value, delimiters and all.
func (d *Digger) skipValue() (err error) {
	t, err := d.dec.Token()
	if err != nil {
		return err
	}

	delim, ok := t.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}

	depth := 1

	for depth > 0 {
		if t, err = d.dec.Token(); err != nil {
			return err
		}

		if delim, ok = t.(json.Delim); !ok {
			continue
		}

		switch delim {
		case '{', '[':
			depth += 1
		case '}', ']':
			depth -= 1
		}
	}

	return nil
}

func (d *Digger) scalar() (value json.Token, err error) {
	value, err = d.dec.Token()
	if err != nil {
		return nil, err
	}

	if delim, ok := value.(json.Delim); ok {
		return nil, fmt.Errorf("the value at path %q is the delimiter %v", d.at(), delim)
	}

	return value, nil
}
