package result

// Diagnostic IDs. SG0xxx come from the emission core, SG1xxx from
// validation, SG2xxx from handlers, SG3xxx from manifests and SG4xxx from templates.
const (
	CodeRenderFault    = "SG0001"
	CodeNothingToEmit  = "SG0002"
	CodeEmptyCombine   = "SG0100"
	CodeUnbalanced     = "SG1001"
	CodeDuplicateName  = "SG1002"
	CodeInvalidName    = "SG2001"
	CodeUnsupported    = "SG2002"
	CodeKindViolation  = "SG2003"
	CodeInvalidValue   = "SG2004"
	CodeMutableField   = "SG2101"
	CodeMissingDoc     = "SG2102"
	CodeNaming         = "SG2103"
	CodeSchema         = "SG3001"
	CodeDependency     = "SG3002"
	CodeUnknownKind    = "SG3003"
	CodeTemplateParse  = "SG4001"
	CodeTemplateRender = "SG4002"
	CodeTemplateLoad   = "SG4003"
)
