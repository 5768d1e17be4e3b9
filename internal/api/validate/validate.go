package validate

import (
	"net/url"
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

type Errs []ErrField

func (e Errs) Error() string { // error interface
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

// Add appends a field error; nil is ignored so helpers can be chained.
func (e *Errs) Add(f *ErrField) {
	if f != nil {
		*e = append(*e, *f)
	}
}

// Helpers
func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinLen(field, value string, min int) *ErrField {
	if v := strings.TrimSpace(value); v != "" && len(v) < min {
		return &ErrField{Field: field, Msg: "must be at least " + strconv.Itoa(min) + " characters"}
	}
	return nil
}

func Email(field, value string) *ErrField {
	if r := Required(field, value); r != nil {
		return r
	}
	if !strings.Contains(value, "@") {
		return &ErrField{Field: field, Msg: "invalid email"}
	}
	return nil
}

// URL accepts an empty value; when present it must parse as an absolute
// http(s) URL.
func URL(field, value string) *ErrField {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ErrField{Field: field, Msg: "must be a valid http(s) URL"}
	}
	return nil
}
