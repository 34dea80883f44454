package scene

// Document is the YAML / JSON form of a Scene. Zero fields keep defaults.
type Document struct {
	// Region names a landmark; TopLeft/BottomRight override it when both are set.
	Region      string `yaml:"region" json:"region,omitempty"`
	TopLeft     *Point `yaml:"top_left" json:"top_left,omitempty"`
	BottomRight *Point `yaml:"bottom_right" json:"bottom_right,omitempty"`

	Width      int `yaml:"width" json:"width,omitempty"`
	Iterations int `yaml:"iterations" json:"iterations,omitempty"`

	Inside   string   `yaml:"inside" json:"inside,omitempty"`
	Gradient string   `yaml:"gradient" json:"gradient,omitempty"`
	Stops    []string `yaml:"stops" json:"stops,omitempty"`

	Output  string `yaml:"output" json:"output,omitempty"`
	Workers int    `yaml:"workers" json:"workers,omitempty"`
}

type Point struct {
	Re float64 `yaml:"re" json:"re"`
	Im float64 `yaml:"im" json:"im"`
}
