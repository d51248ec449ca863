package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const cursorDelimiter = "|"

// EncodeCursor packs a sort key and a unique id into an opaque token.
// The token layout ("key|uuid", base64) is an implementation detail that
// callers must not rely on.
func EncodeCursor[K any](sortKey K, id uuid.UUID) string {
	plain := keyToString(sortKey) + cursorDelimiter + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(plain))
}

// DecodeCursor reverses EncodeCursor. ok is false on any malformed input
// (bad base64, wrong part count, unparseable key or id); it never panics,
// so a garbage token simply degrades to "no cursor" upstream.
func DecodeCursor[K any](token string) (sortKey K, id uuid.UUID, ok bool) {
	var zero K
	if strings.TrimSpace(token) == "" {
		return zero, uuid.Nil, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return zero, uuid.Nil, false
	}
	parts := strings.Split(string(raw), cursorDelimiter)
	if len(parts) != 2 {
		return zero, uuid.Nil, false
	}
	key, err := keyFromString[K](parts[0])
	if err != nil {
		return zero, uuid.Nil, false
	}
	id, err = uuid.Parse(parts[1])
	if err != nil {
		return zero, uuid.Nil, false
	}
	return key, id, true
}

func keyToString[K any](k K) string {
	switch v := any(k).(type) {
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func keyFromString[K any](s string) (K, error) {
	var key K
	switch p := any(&key).(type) {
	case *string:
		*p = s
	case *int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return key, err
		}
		*p = n
	case *int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return key, err
		}
		*p = n
	case *uint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return key, err
		}
		*p = n
	case *time.Time:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return key, err
		}
		*p = t
	default:
		return key, fmt.Errorf("unsupported cursor key type %T", key)
	}
	return key, nil
}
