package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

var (
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrUnknownFilterField = errors.New("unknown filter field")
)

// FilterKind tells which variant a UserFilter holds.
type FilterKind string

const (
	FilterAnd      FilterKind = "And"
	FilterOr       FilterKind = "Or"
	FilterNot      FilterKind = "Not"
	FilterEquality FilterKind = "Equality"
)

// Fields a filter may compare against.
const (
	FieldUserID      = "user_id"
	FieldEmail       = "email"
	FieldDisplayName = "display_name"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
)

var filterFields = []string{FieldUserID, FieldEmail, FieldDisplayName, FieldFirstName, FieldLastName}

// UserFilter is a boolean expression over user attributes. On the wire each
// node is an object with exactly one key naming its kind:
//
//	{"And": [f, ...]}  {"Or": [f, ...]}  {"Not": f}  {"Equality": ["field", "value"]}
type UserFilter struct {
	Kind     FilterKind
	Children []UserFilter
	Field    string
	Value    string
}

func And(children ...UserFilter) UserFilter {
	return UserFilter{Kind: FilterAnd, Children: children}
}

func Or(children ...UserFilter) UserFilter {
	return UserFilter{Kind: FilterOr, Children: children}
}

func Not(child UserFilter) UserFilter {
	return UserFilter{Kind: FilterNot, Children: []UserFilter{child}}
}

func Equality(field, value string) UserFilter {
	return UserFilter{Kind: FilterEquality, Field: field, Value: value}
}

// IsEmpty reports whether f selects everything: a nil filter or an And/Or without children.
func (f *UserFilter) IsEmpty() bool {
	if f == nil {
		return true
	}
	return (f.Kind == FilterAnd || f.Kind == FilterOr) && len(f.Children) == 0
}

func (f *UserFilter) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: null is not a filter", ErrInvalidFilter)
	}

	var node map[string]json.RawMessage
	if err := json.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	if len(node) != 1 {
		return fmt.Errorf("%w: expected exactly one of And, Or, Not, Equality", ErrInvalidFilter)
	}

	for key, raw := range node {
		switch FilterKind(key) {
		case FilterAnd, FilterOr:
			var children []UserFilter
			if err := json.Unmarshal(raw, &children); err != nil {
				return err
			}
			*f = UserFilter{Kind: FilterKind(key), Children: children}
		case FilterNot:
			var child UserFilter
			if err := json.Unmarshal(raw, &child); err != nil {
				return err
			}
			*f = Not(child)
		case FilterEquality:
			var pair []string
			if err := json.Unmarshal(raw, &pair); err != nil || len(pair) != 2 {
				return fmt.Errorf("%w: Equality takes [field, value]", ErrInvalidFilter)
			}
			if !slices.Contains(filterFields, pair[0]) {
				return fmt.Errorf("%w: %q", ErrUnknownFilterField, pair[0])
			}
			*f = Equality(pair[0], pair[1])
		default:
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidFilter, key)
		}
	}
	return nil
}
