// Package bitfield packs tagged struct fields into device register words
// and unpacks them again.
//
// Fields carry a `bitfield:",N"` tag and are laid out from bit 0 upwards in
// declaration order. Untagged fields are ignored. A tag of ",N" on a blank
// field reserves N bits.
package bitfield

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// width parses a ",N" tag. ok is false for fields without a tag.
func width(field reflect.StructField) (bits uint, ok bool, err error) {
	tag, ok := field.Tag.Lookup("bitfield")
	if !ok {
		return 0, false, nil
	}
	_, n, found := strings.Cut(tag, ",")
	if !found {
		return 0, true, fmt.Errorf("invalid bitfield tag %q on field %s", tag, field.Name)
	}
	v, err := strconv.ParseUint(n, 10, 7)
	if err != nil || v > 64 {
		return 0, true, fmt.Errorf("invalid bitfield tag %q on field %s", tag, field.Name)
	}
	return uint(v), true, nil
}

func structValue(x any, fn string) (reflect.Value, error) {
	v := reflect.ValueOf(x)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%s: expected struct, got %v", fn, v.Kind())
	}
	return v, nil
}

// Pack packs the tagged fields of struct x into an integer of at most
// numBits bits.
func Pack(x any, numBits uint) (packed uint64, err error) {
	v, err := structValue(x, "Pack")
	if err != nil {
		return 0, err
	}

	t := v.Type()
	var offset uint
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		bits, ok, err := width(field)
		if err != nil {
			return 0, fmt.Errorf("Pack: %w", err)
		}
		if !ok || bits == 0 {
			continue
		}
		if field.Name == "_" {
			offset += bits
			continue
		}

		var fieldBits uint64
		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Bool:
			if fv.Bool() {
				fieldBits = 1
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fieldBits = fv.Uint()
		default:
			return 0, fmt.Errorf("Pack: unsupported field type %v for field %s", fv.Kind(), field.Name)
		}

		if bits < 64 && fieldBits >= 1<<bits {
			return 0, fmt.Errorf("Pack: value %d exceeds %d bits for field %s", fieldBits, bits, field.Name)
		}
		if offset+bits > numBits {
			return 0, fmt.Errorf("Pack: field %s ends at bit %d, beyond %d", field.Name, offset+bits, numBits)
		}
		packed |= fieldBits << offset
		offset += bits
	}
	return packed, nil
}

// Unpack is the inverse of Pack: it sets the tagged fields of the struct x
// points to from packed.
func Unpack(packed uint64, x any) error {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("Unpack: expected non-nil pointer, got %v", v.Kind())
	}
	v, err := structValue(x, "Unpack")
	if err != nil {
		return err
	}

	t := v.Type()
	var offset uint
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		bits, ok, err := width(field)
		if err != nil {
			return fmt.Errorf("Unpack: %w", err)
		}
		if !ok || bits == 0 {
			continue
		}
		fieldBits := packed >> offset
		if bits < 64 {
			fieldBits &= 1<<bits - 1
		}
		offset += bits
		if field.Name == "_" {
			continue
		}

		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Bool:
			fv.SetBool(fieldBits != 0)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if fv.OverflowUint(fieldBits) {
				return fmt.Errorf("Unpack: %d bits do not fit field %s", bits, field.Name)
			}
			fv.SetUint(fieldBits)
		default:
			return fmt.Errorf("Unpack: unsupported field type %v for field %s", fv.Kind(), field.Name)
		}
	}
	return nil
}

// MustPack is Pack for register layouts fixed at compile time; it panics on
// error.
func MustPack(x any, numBits uint) uint64 {
	p, err := Pack(x, numBits)
	if err != nil {
		panic(err)
	}
	return p
}
