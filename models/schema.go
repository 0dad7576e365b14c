package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InputKind classifies a form field so the generic renderer and the
// coercion layer agree on how to treat its raw string value.
type InputKind int

const (
	InputText InputKind = iota
	InputNumeric
	InputDateTime
	InputBoolean
	InputSSN
)

// Schema describes one managed kind for the generic manage surface.
type Schema struct {
	// Columns is the display column list, in table order.
	Columns []string
	// KeyFields identify a record; they are immutable after creation
	// and excluded from update payloads.
	KeyFields []string
	// FormFields is the create-form field list. Server-assigned ids
	// (bookingid, rentingid) are absent here.
	FormFields []string
	// NumericKey selects numeric ordering for the list view.
	NumericKey bool
}

// schemas is static configuration. It must stay exhaustive for all six
// kinds: the generic renderer fails closed on a missing entry.
var schemas = map[Kind]Schema{
	KindCustomer: {
		Columns:    []string{"customerid", "fullname", "address"},
		KeyFields:  []string{"customerid"},
		FormFields: []string{"customerid", "fullname", "address"},
	},
	KindEmployee: {
		Columns:    []string{"ssn", "fullname", "address", "jobposition", "hotelid"},
		KeyFields:  []string{"ssn"},
		FormFields: []string{"ssn", "fullname", "address", "jobposition", "hotelid"},
	},
	KindHotel: {
		Columns:    []string{"address", "contactemail", "phonenumber", "numberofrooms", "rating", "chainname", "managerid"},
		KeyFields:  []string{"address"},
		FormFields: []string{"address", "contactemail", "phonenumber", "numberofrooms", "rating", "chainname", "managerid"},
	},
	KindRoom: {
		Columns:    []string{"roomnumber", "hoteladdress", "price", "amenities", "problems", "capacity", "viewtype", "extendable"},
		KeyFields:  []string{"roomnumber", "hoteladdress"},
		FormFields: []string{"roomnumber", "hoteladdress", "price", "amenities", "problems", "capacity", "viewtype", "extendable"},
		NumericKey: true,
	},
	KindBooking: {
		Columns:    []string{"bookingid", "customerid", "roomnumber", "startdate", "enddate"},
		KeyFields:  []string{"bookingid"},
		FormFields: []string{"customerid", "roomnumber", "startdate", "enddate"},
		NumericKey: true,
	},
	KindRenting: {
		Columns:    []string{"rentingid", "customerid", "roomnumber", "employeeid", "bookingid", "startdate", "enddate", "paymentinformation"},
		KeyFields:  []string{"rentingid"},
		FormFields: []string{"customerid", "roomnumber", "employeeid", "bookingid", "startdate", "enddate", "paymentinformation"},
		NumericKey: true,
	},
}

// SchemaFor returns the schema for kind, failing closed on unknown kinds.
func SchemaFor(kind Kind) (Schema, error) {
	s, ok := schemas[kind]
	if !ok {
		return Schema{}, fmt.Errorf("no schema for entity kind %q", kind)
	}
	return s, nil
}

// KeyField returns the primary sort/identity field for kind.
func KeyField(kind Kind) string {
	s, ok := schemas[kind]
	if !ok || len(s.KeyFields) == 0 {
		return "id"
	}
	return s.KeyFields[0]
}

// InputKindFor classifies a field by the backend's naming convention.
// The "number" substring rule would otherwise catch phonenumber, which
// the backend types as a string.
func InputKindFor(field string) InputKind {
	f := strings.ToLower(field)
	switch {
	case f == "ssn":
		return InputSSN
	case f == "phonenumber":
		return InputText
	case f == "extendable":
		return InputBoolean
	case strings.Contains(f, "date"):
		return InputDateTime
	case strings.Contains(f, "price"), strings.Contains(f, "number"), strings.Contains(f, "rating"):
		return InputNumeric
	}
	return InputText
}

// datetime-local pickers emit minute precision without a zone.
const localPickerLayout = "2006-01-02T15:04"

// CoerceField converts one raw form value into its transport type.
func CoerceField(field, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	switch InputKindFor(field) {
	case InputNumeric:
		if field == "price" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("field %s: %q is not a number", field, raw)
			}
			return v, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %q is not an integer", field, raw)
		}
		return v, nil
	case InputBoolean:
		switch strings.ToLower(raw) {
		case "true", "yes":
			return true, nil
		case "false", "no", "":
			return false, nil
		}
		return nil, fmt.Errorf("field %s: %q is not a yes/no value", field, raw)
	case InputDateTime:
		return coerceDate(field, raw)
	case InputSSN:
		return raw, nil
	}
	return raw, nil
}

func coerceDate(field, raw string) (string, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	if t, err := time.Parse(localPickerLayout, raw); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	return "", fmt.Errorf("field %s: %q is not a recognized date", field, raw)
}

// CreatePayload coerces the create-form fields of kind into a typed
// JSON payload.
func CreatePayload(kind Kind, fields map[string]string) (map[string]any, error) {
	s, err := SchemaFor(kind)
	if err != nil {
		return nil, err
	}
	return coerceFields(s.FormFields, fields)
}

// UpdatePayload selects the editable subset: display columns minus key
// fields. The key itself is never part of an update body (notably, an
// Employee update never re-sends ssn).
func UpdatePayload(kind Kind, fields map[string]string) (map[string]any, error) {
	s, err := SchemaFor(kind)
	if err != nil {
		return nil, err
	}
	keys := map[string]bool{}
	for _, k := range s.KeyFields {
		keys[k] = true
	}
	editable := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		if !keys[col] {
			editable = append(editable, col)
		}
	}
	return coerceFields(editable, fields)
}

// integer-typed fields the naming convention alone does not catch
var intFields = map[string]bool{"capacity": true, "bookingid": true, "rentingid": true}

func coerceFields(names []string, fields map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(names))
	for _, name := range names {
		raw, ok := fields[name]
		if !ok {
			continue
		}
		if intFields[name] {
			v, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("field %s: %q is not an integer", name, raw)
			}
			out[name] = v
			continue
		}
		v, err := CoerceField(name, raw)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}
