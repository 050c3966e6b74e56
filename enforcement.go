package jsonshape

// EnforcementLevel classifies how precisely Project captures a draft-07
// keyword. It is documentation and testing metadata; the runtime engine
// never consults it.
type EnforcementLevel int

const (
	// Enforced: the descriptor captures the keyword exactly.
	Enforced EnforcementLevel = iota
	// PartiallyEnforced: the descriptor captures the keyword but
	// over-approximates the accepted set.
	PartiallyEnforced
	// NotEnforced: the keyword is validated at runtime only and has no
	// structural representation.
	NotEnforced
	// NoConstraintNeeded: the keyword is an annotation with no accepted-set
	// meaning.
	NoConstraintNeeded
	// Unsupported: the keyword is rejected at construction.
	Unsupported
)

func (l EnforcementLevel) String() string {
	switch l {
	case Enforced:
		return "enforced"
	case PartiallyEnforced:
		return "partially-enforced"
	case NotEnforced:
		return "not-enforced"
	case NoConstraintNeeded:
		return "no-constraint-needed"
	case Unsupported:
		return "unsupported"
	default:
		return "invalid"
	}
}

// KeywordEnforcement maps each draft-07 keyword this package knows about
// to its enforcement level.
var KeywordEnforcement = map[string]EnforcementLevel{
	"type":                 Enforced,
	"properties":           Enforced,
	"required":             Enforced,
	"additionalProperties": Enforced,
	"items":                Enforced,
	"enum":                 Enforced,
	"const":                Enforced,
	"allOf":                Enforced,
	"anyOf":                Enforced,

	// Rest applies to all positions in the descriptor, not only those
	// beyond the fixed prefix.
	"additionalItems": PartiallyEnforced,
	// Exclusivity is not modeled; projected like anyOf.
	"oneOf": PartiallyEnforced,
	// Only the two-branch form narrows the shape.
	"if":   PartiallyEnforced,
	"then": PartiallyEnforced,
	"else": PartiallyEnforced,

	// Runtime-only constraints; no structural representation exists.
	"$ref":             NotEnforced,
	"pattern":          NotEnforced,
	"format":           NotEnforced,
	"minimum":          NotEnforced,
	"maximum":          NotEnforced,
	"exclusiveMinimum": NotEnforced,
	"exclusiveMaximum": NotEnforced,
	"multipleOf":       NotEnforced,
	"minLength":        NotEnforced,
	"maxLength":        NotEnforced,
	"minItems":         NotEnforced,
	"maxItems":         NotEnforced,
	"uniqueItems":      NotEnforced,
	"minProperties":    NotEnforced,
	"maxProperties":    NotEnforced,

	"title":       NoConstraintNeeded,
	"description": NoConstraintNeeded,
	"$schema":     NoConstraintNeeded,
	"definitions": NoConstraintNeeded,
	"default":     NoConstraintNeeded,

	"patternProperties": Unsupported,
	"propertyNames":     Unsupported,
	"dependencies":      Unsupported,
	"contains":          Unsupported,
	"not":               Unsupported,
}
