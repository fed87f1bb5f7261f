package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/advocacy-backend/internal/domain"
	"github.com/heartmarshall/advocacy-backend/pkg/ctxutil"
)

// reservedKeys may never appear in a PATCH body.
var reservedKeys = []string{"id", "user_id"}

// ownerID returns the owner resolved by the auth middleware.
func ownerID(r *http.Request) (uuid.UUID, error) {
	id, ok := ctxutil.OwnerIDFromCtx(r.Context())
	if !ok {
		return uuid.Nil, domain.ErrUnauthenticated
	}
	return id, nil
}

// pathID parses the {id} URL parameter. A malformed id cannot name an owned
// record, so it is reported as not found.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}

// decodeJSON decodes a single JSON object into dst, rejecting unknown
// fields and trailing data.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit))
		}
		return fmt.Errorf("read body: %w", err)
	}
	return decodeBytes(body, dst)
}

// decodePatch is decodeJSON for partial updates: keys naming the record id
// or its owner are rejected before decoding.
func decodePatch(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.NewValidationError("body", fmt.Sprintf("must not exceed %d bytes", tooLarge.Limit))
		}
		return fmt.Errorf("read body: %w", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return domain.NewValidationError("body", "must be a JSON object")
	}
	var errs []domain.FieldError
	for _, k := range reservedKeys {
		if _, ok := keys[k]; ok {
			errs = append(errs, domain.FieldError{Field: k, Message: "cannot be changed"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return decodeBytes(body, dst)
}

func decodeBytes(body []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return bodyError(err)
	}
	if dec.More() {
		return domain.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

func bodyError(err error) error {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError("body", "malformed JSON")
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return domain.NewValidationError("body", "must be a JSON object")
		}
		return domain.NewValidationError(typeErr.Field, "wrong type")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		return domain.NewValidationError(field, "unknown field")
	default:
		return domain.NewValidationError("body", err.Error())
	}
}

// query reads optional list filters, collecting every malformed value.
type query struct {
	values url.Values
	errs   []domain.FieldError
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query()}
}

func (q *query) str(key string) *string {
	if !q.values.Has(key) {
		return nil
	}
	v := q.values.Get(key)
	return &v
}

func (q *query) uuid(key string) *uuid.UUID {
	s := q.str(key)
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be a valid id"})
		return nil
	}
	return &id
}

func (q *query) time(key string) *time.Time {
	s := q.str(key)
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		q.errs = append(q.errs, domain.FieldError{Field: key, Message: "must be an RFC 3339 timestamp"})
		return nil
	}
	t = t.UTC()
	return &t
}

func (q *query) err() error {
	if len(q.errs) > 0 {
		return domain.NewValidationErrors(q.errs)
	}
	return nil
}

// queryEnum returns the raw value as T; services reject unknown members.
func queryEnum[T ~string](q *query, key string) *T {
	s := q.str(key)
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}

func ownerAndID(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	owner, err := ownerID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := pathID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return owner, id, nil
}
