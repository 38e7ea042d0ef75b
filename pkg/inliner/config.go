package inliner

// Config holds the options of the inliner. The zero value is not useful;
// start from DefaultConfig.
type Config struct {
	// TabWidth is the number of spaces a shader body is indented relative
	// to its script tags.
	TabWidth int `json:"tab_width"`

	// Phrase is the text inside the marker comment. Spaces and asterisks
	// around it are ignored when matching.
	Phrase string `json:"marker_phrase"`
}

// DefaultConfig returns the configuration used for the site build.
func DefaultConfig() Config {
	return Config{
		TabWidth: 8,
		Phrase:   "SHADERS GO HERE",
	}
}
