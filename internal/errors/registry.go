package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Malformed Input (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryCompile,
		Message:  "Unknown literal kind",
		Detail:   "A literal must be exactly one of element, component or fragment.",
	},
	"E101": {
		Category: CategoryCompile,
		Message:  "Literal payload missing",
		Detail:   "The literal kind names a payload that the parser did not provide.",
	},
	"E102": {
		Category: CategoryCompile,
		Message:  "Binding address does not resolve",
		Detail:   "A dynamic binding targets a position that is not an element of its static tree.",
	},
	"E103": {
		Category: CategoryCompile,
		Message:  "Invalid expression",
		Detail:   "An expression embedded in the literal is not a valid Go expression.",
	},
	"E104": {
		Category: CategoryCompile,
		Message:  "Maximum nesting depth exceeded",
		Detail:   "The literal nests deeper than the configured maxDepth.",
	},
	"E105": {
		Category: CategoryCompile,
		Message:  "Unknown binding kind",
		Detail:   "A dynamic binding must be a prop binding, a child expression or a child component.",
	},
	"E106": {
		Category: CategoryCompile,
		Message:  "Unknown static node kind",
		Detail:   "A static node must be an element, a text node or a comment.",
	},
	"E107": {
		Category: CategoryCompile,
		Message:  "Placeholder references unknown literal",
		Detail:   "The source contains a literal placeholder whose id is not in the document.",
	},
	"E108": {
		Category: CategoryCompile,
		Message:  "Invalid source file",
		Detail:   "The surrounding Go source could not be parsed.",
	},
	"E109": {
		Category: CategoryCompile,
		Message:  "Invalid document",
		Detail:   "The parser document could not be decoded.",
	},
	"E110": {
		Category: CategoryCompile,
		Message:  "Unknown child kind",
		Detail:   "A dynamic child must be an expression, an element or a component.",
	},

	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid domgen.json",
		Detail:   "The domgen.json configuration file is malformed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Incompatible options",
		Detail:   "Two configuration options cannot be enabled together.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid option value",
		Detail:   "A configuration option has a value outside its allowed range.",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Static tree cannot be cloned from a template",
		Detail:   "templateMode is enabled but the static tree would not survive an HTML round trip with the same node positions.",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "No input documents",
		Detail:   "No document files matched the given paths.",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Not a domgen project",
		Detail:   "No domgen.json was found. Run this command from a directory with domgen.json or pass --config.",
	},

	// ============================================
	// Output Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryIO,
		Message:  "Output write failed",
		Detail:   "The generated file could not be written to its destination.",
	},
	"E161": {
		Category: CategoryIO,
		Message:  "Invalid output target",
		Detail:   "The output target must be a directory path or an s3://bucket/prefix URL.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
