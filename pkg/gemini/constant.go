package gemini

const (
	// DefaultModel is the default Gemini model for screenshot analysis.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Generative Language API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"
)
