package highlight

import (
	"slices"
	"strings"
)

// DefaultLanguage is used when a code block carries no usable language hint.
// The reference deck's samples are Swift.
const DefaultLanguage = "swift"

// wordSet holds the literal keyword and type names for one language.
type wordSet struct {
	keywords []string
	types    []string
}

//nolint:gochecknoglobals // Read-only lookup tables.
var (
	languages = map[string]wordSet{
		"swift": {
			keywords: []string{
				"class", "struct", "enum", "protocol", "extension", "func", "var", "let", "const",
				"if", "else", "for", "while", "repeat", "switch", "case", "default", "break",
				"continue", "return", "throw", "try", "catch", "guard", "defer", "in",
				"private", "fileprivate", "internal", "public", "open", "static", "final",
				"import", "typealias", "associatedtype", "precedencegroup", "operator",
				"subscript", "init", "deinit", "get", "set", "willSet", "didSet", "inout",
				"override", "required", "convenience", "lazy", "weak", "unowned", "strong",
			},
			types: []string{
				"String", "Int", "Double", "Float", "Bool", "Array", "Dictionary", "Set",
				"Optional", "URL", "Data", "Date", "UUID", "CGFloat", "CGPoint", "CGSize",
				"CGRect", "UIView", "UIViewController", "UIColor", "UIFont", "UIImage",
				"UILabel", "UIButton", "UITableView", "UICollectionView", "UIScrollView",
			},
		},
		"go": {
			keywords: []string{
				"break", "case", "chan", "const", "continue", "default", "defer", "else",
				"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
				"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
			},
			types: []string{
				"bool", "byte", "complex64", "complex128", "error", "float32", "float64",
				"int", "int8", "int16", "int32", "int64", "rune", "string",
				"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any",
			},
		},
		"python": {
			keywords: []string{
				"and", "as", "assert", "async", "await", "break", "class", "continue", "def",
				"del", "elif", "else", "except", "finally", "for", "from", "global", "if",
				"import", "in", "is", "lambda", "nonlocal", "not", "or", "pass", "raise",
				"return", "try", "while", "with", "yield", "None", "True", "False",
			},
			types: []string{
				"int", "float", "complex", "str", "bytes", "bool", "list", "tuple",
				"dict", "set", "frozenset", "object",
			},
		},
		"javascript": {
			keywords: []string{
				"async", "await", "break", "case", "catch", "class", "const", "continue",
				"default", "delete", "do", "else", "export", "extends", "finally", "for",
				"function", "if", "import", "in", "instanceof", "let", "new", "return",
				"static", "super", "switch", "this", "throw", "try", "typeof", "var",
				"void", "while", "yield", "interface", "type", "implements",
			},
			types: []string{
				"Array", "Boolean", "Date", "Error", "Map", "Number", "Object", "Promise",
				"RegExp", "Set", "String", "Symbol", "string", "number", "boolean", "any",
			},
		},
		"java": {
			keywords: []string{
				"abstract", "break", "case", "catch", "class", "continue", "default", "do",
				"else", "extends", "final", "finally", "for", "if", "implements", "import",
				"instanceof", "interface", "new", "package", "private", "protected", "public",
				"return", "static", "super", "switch", "synchronized", "this", "throw",
				"throws", "try", "void", "volatile", "while",
			},
			types: []string{
				"boolean", "byte", "char", "double", "float", "int", "long", "short",
				"String", "Integer", "Object", "List", "Map", "Set",
			},
		},
		"kotlin": {
			keywords: []string{
				"as", "break", "class", "continue", "do", "else", "false", "for", "fun",
				"if", "in", "interface", "is", "null", "object", "package", "return",
				"super", "this", "throw", "true", "try", "typealias", "val", "var",
				"when", "while", "data", "sealed", "override", "private", "public",
			},
			types: []string{
				"Any", "Boolean", "Byte", "Char", "Double", "Float", "Int", "Long",
				"Short", "String", "Unit", "List", "Map", "Set",
			},
		},
		"rust": {
			keywords: []string{
				"as", "break", "const", "continue", "crate", "else", "enum", "extern",
				"fn", "for", "if", "impl", "in", "let", "loop", "match", "mod", "move",
				"mut", "pub", "ref", "return", "self", "static", "struct", "super",
				"trait", "type", "unsafe", "use", "where", "while",
			},
			types: []string{
				"bool", "char", "f32", "f64", "i8", "i16", "i32", "i64", "i128", "isize",
				"u8", "u16", "u32", "u64", "u128", "usize", "str", "String", "Vec",
				"Option", "Result", "Box",
			},
		},
	}

	languageAliases = map[string]string{
		"golang":     "go",
		"py":         "python",
		"js":         "javascript",
		"ts":         "javascript",
		"typescript": "javascript",
		"kt":         "kotlin",
		"rs":         "rust",
	}
)

// CanonicalLanguage resolves aliases. Unknown languages map to
// DefaultLanguage.
func CanonicalLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if alias, ok := languageAliases[lang]; ok {
		lang = alias
	}
	if _, ok := languages[lang]; ok {
		return lang
	}
	return DefaultLanguage
}

// Languages returns the names of languages with built-in word sets.
func Languages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
