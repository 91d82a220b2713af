// Package config carries the compiler's fixed tables: recognized source
// extensions, intrinsic function names, and the primitive-type seeding
// order. It holds no env/file-based configuration, matching its model.
package config

// SourceFileExt is the recognized Tol source file extension.
const SourceFileExt = ".tol"

// SourceFileExtensions lists every extension the driver will accept.
var SourceFileExtensions = []string{".tol"}

// Intrinsic ("magic") function names — the only runtime standard library
// Tol has (spec §4.4).
const (
	PrintIntrinsic   = "print"
	PrintlnIntrinsic = "println"
	AlisIntrinsic    = "alis"
)

// MainFunctionName is the source identifier for the program entry point.
// MainFunctionCName is the C identifier it is lowered to; a C `int main()`
// is emitted separately to call it (spec §4.5).
const (
	MainFunctionName  = "una"
	MainFunctionCName = "__TOL_main__"
)

// AkoParamName is the reserved self-parameter name that marks a method as
// an instance method rather than a static one (spec §4.3).
const AkoParamName = "ako"

// PrimitiveTypeOrder is the seeding order for primitive types in the
// analyzer's bottom scope: signed widths, then unsigned widths, then
// floats, then bool/kar/wala. Preserved as an ordered slice (rather than
// relying on Go map iteration, which is unordered) per original_source's
// declare_primitive_types sequence.
var PrimitiveTypeOrder = []string{
	"i8", "i16", "i32", "i64", "isukat",
	"u8", "u16", "u32", "u64", "usukat",
	"lutang", "dobletang",
	"bool", "kar", "wala",
}

// StatementStarters are the keywords (as lexemes) that synchronize() skips
// to after a syntax error (spec §4.3).
var StatementStarters = []string{"paraan", "ang", "ibalik", "bagay", "kung", "itupad", "@", "sa"}
