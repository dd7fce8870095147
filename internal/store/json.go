package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// GetJSON decodes the value at key into v. A value that fails to decode
// returns an error wrapping ErrMalformed.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(b))
}

// GetInt parses the decimal integer at key.
func GetInt(ctx context.Context, s Store, key string) (int, bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s: %v", ErrMalformed, key, err)
	}
	return n, true, nil
}

// SetInt stores n as a decimal string.
func SetInt(ctx context.Context, s Store, key string, n int) error {
	return s.Set(ctx, key, strconv.Itoa(n))
}

// GetFlag reports whether key holds "true".
func GetFlag(ctx context.Context, s Store, key string) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return ok && raw == True, nil
}

// SetFlag stores "true" or removes key.
func SetFlag(ctx context.Context, s Store, key string, on bool) error {
	if on {
		return s.Set(ctx, key, True)
	}
	return s.Remove(ctx, key)
}
