package bind

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "netmatch/internal/platform/errors"
)

// ParseQuery fills T from the request query string and validates it
// fields are matched by their `query` tag; string, bool and integer kinds are supported,
// directly or behind a pointer. An absent key leaves the field at its zero value so
// validator tags decide what is required; a pointer field tells absent (nil) from empty
func ParseQuery[T any](r *http.Request) (T, error) {
	var zero, dst T

	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return zero, perr.InvalidArgf("query target must be a struct, got %s", rv.Kind())
	}

	q := r.URL.Query()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := strings.Split(f.Tag.Get("query"), ",")[0]
		if name == "" || name == "-" || !f.IsExported() {
			continue
		}
		vals, ok := q[name]
		if !ok || len(vals) == 0 {
			continue
		}
		if err := setField(rv.Field(i), vals[0]); err != nil {
			return zero, perr.WithField(perr.Validationf("%s must be a valid %s", name, f.Type.Kind()), name)
		}
	}

	if err := Get().Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

func setField(v reflect.Value, raw string) error {
	if v.Kind() == reflect.Pointer {
		elem := reflect.New(v.Type().Elem())
		if err := setField(elem.Elem(), raw); err != nil {
			return err
		}
		v.Set(elem)
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	default:
		return perr.InvalidArgf("unsupported query field kind %s", v.Kind())
	}
	return nil
}
