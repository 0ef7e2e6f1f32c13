package linear

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// Decoders for comparator objects and scalar values arriving as raw tool
// arguments. Wrongly typed values and unknown operator keys are rejected,
// with every offender reported, not just the first.

// AsValidationErrors extracts the field-level violations carried by err,
// or wraps a plain error as a single violation on the given field.
func AsValidationErrors(field string, err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return ValidationErrors{{Field: field, Message: err.Error()}}
}

// StringArg extracts a string argument, returning the zero value when the
// argument is absent. Required-ness is the input type's Validate concern;
// only wrongly typed values are reported here.
func StringArg(args map[string]any, field string, errs *ValidationErrors) string {
	val, ok := args[field]
	if !ok || val == nil {
		return ""
	}
	s, ok := val.(string)
	if !ok {
		*errs = append(*errs, ValidationError{Field: field, Message: "must be a string"})
		return ""
	}
	return s
}

// StringPtrArg extracts an optional string argument. Absent arguments and
// explicit nulls both yield nil.
func StringPtrArg(args map[string]any, field string, errs *ValidationErrors) *string {
	val, ok := args[field]
	if !ok || val == nil {
		return nil
	}
	s, ok := val.(string)
	if !ok {
		*errs = append(*errs, ValidationError{Field: field, Message: "must be a string"})
		return nil
	}
	return &s
}

// NumberPtrArg extracts an optional numeric argument.
func NumberPtrArg(args map[string]any, field string, errs *ValidationErrors) *float64 {
	val, ok := args[field]
	if !ok || val == nil {
		return nil
	}
	switch n := val.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	default:
		*errs = append(*errs, ValidationError{Field: field, Message: "must be a number"})
		return nil
	}
}

// StringSliceArg extracts an optional string-array argument. Absent
// arguments yield nil, so the distinction between "not supplied" and
// "supplied empty" survives into the input builders.
func StringSliceArg(args map[string]any, field string, errs *ValidationErrors) []string {
	val, ok := args[field]
	if !ok || val == nil {
		return nil
	}
	if ss, ok := val.([]string); ok {
		return ss
	}
	items, ok := val.([]any)
	if !ok {
		*errs = append(*errs, ValidationError{Field: field, Message: "must be an array of strings"})
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			*errs = append(*errs, ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "must be a string"})
			continue
		}
		out = append(out, s)
	}
	return out
}

func comparatorObject(field string, raw any) (map[string]any, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ValidationErrors{{Field: field, Message: "must be a comparator object"}}
	}
	if len(obj) == 0 {
		return nil, ValidationErrors{{Field: field, Message: "must contain at least one operator"}}
	}
	return obj, nil
}

func stringOperator(obj map[string]any, field, op string, errs *ValidationErrors) *string {
	val, ok := obj[op]
	if !ok {
		return nil
	}
	s, ok := val.(string)
	if !ok {
		*errs = append(*errs, ValidationError{Field: field + "." + op, Message: "must be a string"})
		return nil
	}
	return &s
}

func numberOperator(obj map[string]any, field, op string, errs *ValidationErrors) *float64 {
	val, ok := obj[op]
	if !ok {
		return nil
	}
	// JSON transports deliver float64; in-process callers may pass ints.
	switch n := val.(type) {
	case float64:
		return &n
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	default:
		*errs = append(*errs, ValidationError{Field: field + "." + op, Message: "must be a number"})
		return nil
	}
}

func stringSliceOperator(obj map[string]any, field, op string, errs *ValidationErrors) []string {
	val, ok := obj[op]
	if !ok {
		return nil
	}
	if ss, ok := val.([]string); ok {
		return ss
	}
	items, ok := val.([]any)
	if !ok {
		*errs = append(*errs, ValidationError{Field: field + "." + op, Message: "must be an array of strings"})
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			*errs = append(*errs, ValidationError{Field: fmt.Sprintf("%s.%s[%d]", field, op, i), Message: "must be a string"})
			continue
		}
		out = append(out, s)
	}
	return out
}

func unknownOperators(obj map[string]any, field string, known ...string) ValidationErrors {
	var errs ValidationErrors
	for key := range obj {
		if !slices.Contains(known, key) {
			errs = append(errs, ValidationError{Field: field + "." + key, Message: "unknown operator"})
		}
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return errs
}

// DecodeIDComparator decodes {eq, in, nin} from a raw argument value.
func DecodeIDComparator(field string, raw any) (*IDComparator, error) {
	obj, err := comparatorObject(field, raw)
	if err != nil {
		return nil, err
	}
	var errs ValidationErrors
	c := &IDComparator{
		Eq:  stringOperator(obj, field, "eq", &errs),
		In:  stringSliceOperator(obj, field, "in", &errs),
		Nin: stringSliceOperator(obj, field, "nin", &errs),
	}
	errs = append(errs, unknownOperators(obj, field, "eq", "in", "nin")...)
	if len(errs) > 0 {
		return nil, errs
	}
	return c, nil
}

// DecodeStringComparator decodes {eq, contains, startsWith, endsWith}.
func DecodeStringComparator(field string, raw any) (*StringComparator, error) {
	obj, err := comparatorObject(field, raw)
	if err != nil {
		return nil, err
	}
	var errs ValidationErrors
	c := &StringComparator{
		Eq:         stringOperator(obj, field, "eq", &errs),
		Contains:   stringOperator(obj, field, "contains", &errs),
		StartsWith: stringOperator(obj, field, "startsWith", &errs),
		EndsWith:   stringOperator(obj, field, "endsWith", &errs),
	}
	errs = append(errs, unknownOperators(obj, field, "eq", "contains", "startsWith", "endsWith")...)
	if len(errs) > 0 {
		return nil, errs
	}
	return c, nil
}

// DecodeNumberComparator decodes {eq, lt, lte, gt, gte}.
func DecodeNumberComparator(field string, raw any) (*NumberComparator, error) {
	obj, err := comparatorObject(field, raw)
	if err != nil {
		return nil, err
	}
	var errs ValidationErrors
	c := &NumberComparator{
		Eq:  numberOperator(obj, field, "eq", &errs),
		Lt:  numberOperator(obj, field, "lt", &errs),
		Lte: numberOperator(obj, field, "lte", &errs),
		Gt:  numberOperator(obj, field, "gt", &errs),
		Gte: numberOperator(obj, field, "gte", &errs),
	}
	errs = append(errs, unknownOperators(obj, field, "eq", "lt", "lte", "gt", "gte")...)
	if len(errs) > 0 {
		return nil, errs
	}
	return c, nil
}

// DecodeDateComparator decodes {eq, lt, lte, gt, gte}. Values pass
// through verbatim; the API resolves timestamps and relative durations.
func DecodeDateComparator(field string, raw any) (*DateComparator, error) {
	obj, err := comparatorObject(field, raw)
	if err != nil {
		return nil, err
	}
	var errs ValidationErrors
	c := &DateComparator{
		Eq:  stringOperator(obj, field, "eq", &errs),
		Lt:  stringOperator(obj, field, "lt", &errs),
		Lte: stringOperator(obj, field, "lte", &errs),
		Gt:  stringOperator(obj, field, "gt", &errs),
		Gte: stringOperator(obj, field, "gte", &errs),
	}
	errs = append(errs, unknownOperators(obj, field, "eq", "lt", "lte", "gt", "gte")...)
	if len(errs) > 0 {
		return nil, errs
	}
	return c, nil
}
