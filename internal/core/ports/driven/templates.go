package driven

// TemplateStore provides access to the Bar-compliant narrative templates.
// Implementations may load templates from files, embed them in the binary,
// or fetch them from a remote configuration service.
type TemplateStore interface {
	// Load returns the template for the given name.
	// If the template is not found, implementations should return the embedded
	// default or an error, depending on whether a default exists.
	Load(name string) (string, error)

	// Reload clears any cached templates, forcing fresh loads on next access.
	// This is useful when templates may have been edited on disk.
	Reload()
}

// Well-known template names. These match the narrative type names and define the
// contract between the engine and template providers.
//
// Templates use literal {{placeholder}} tokens; see the engine's template context
// for the available keys.
const (
	// TemplateLitigation is used for court-proceeding matters.
	TemplateLitigation = "litigation"

	// TemplateAdvisory is used for opinion and transactional matters.
	TemplateAdvisory = "advisory"

	// TemplateGeneral is used when neither keyword set matches.
	TemplateGeneral = "general"
)
