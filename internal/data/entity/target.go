package entity

// Target selects one movie for word cloud analysis.
type Target struct {
	Title            string   `yaml:"title" validate:"required"`
	Stopwords        []string `yaml:"stopwords"`
	RenderUnfiltered bool     `yaml:"render_unfiltered"`
}
