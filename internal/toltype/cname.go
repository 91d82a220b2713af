package toltype

import "strings"

var primitiveCNames = map[string]string{
	"i8": "int8_t", "i16": "int16_t", "i32": "int32_t", "i64": "int64_t", "isukat": "ptrdiff_t",
	"u8": "uint8_t", "u16": "uint16_t", "u32": "uint32_t", "u64": "uint64_t", "usukat": "size_t",
	"lutang": "float", "dobletang": "double",
	"bool": "bool", "kar": "char", "wala": "void",
}

// CName lowers t to its C type spelling (spec §4.5's TolType→C table). For
// Array it returns the TOL_Array_<elem> struct name the codegen emits a
// DEFINE_TOL_ARRAY_STRUCT for.
func CName(t Type) string {
	switch v := t.(type) {
	case Primitive:
		if c, ok := primitiveCNames[v.Name]; ok {
			return c
		}
		return v.Name
	case Bagay:
		return v.Name
	case UnknownIdentifier:
		return v.Name
	case Array:
		return "TOL_Array_" + ElementCName(v.Elem)
	case Pointer:
		return CName(v.Elem) + "*"
	case MutablePointer:
		return CName(v.Elem) + "*"
	default:
		return "void"
	}
}

// ElementCName is the bare element-type name used both to key
// declared_array_types and to build the TOL_Array_<elem> struct name; it
// must not itself contain '*' or spaces, so pointer element types are
// flattened with an underscore.
func ElementCName(elem Type) string {
	name := CName(elem)
	name = strings.ReplaceAll(name, "*", "_ptr")
	return name
}
