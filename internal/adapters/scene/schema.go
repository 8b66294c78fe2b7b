package scene

// File represents the structure of a scene YAML file.
type File struct {
	Version string      `yaml:"version"`
	Frames  []*FrameDTO `yaml:"frames"`
}

// FrameDTO represents one frame declaration in the scene file. A frame
// without a parent is a root. Translation and rotation describe the RT
// edge from the parent frame to this frame.
type FrameDTO struct {
	Name        string         `yaml:"name"`
	Parent      string         `yaml:"parent"`
	Translation TranslationDTO `yaml:"translation"`
	Rotation    RotationDTO    `yaml:"rotation"`
	Links       []LinkDTO      `yaml:"links"`
}

// TranslationDTO is the position component of an RT edge.
type TranslationDTO struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// RotationDTO is the orientation component of an RT edge, as Euler
// angles in radians applied in fixed axis order X, Y, Z.
type RotationDTO struct {
	Roll  float64 `yaml:"roll"`
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
}

// LinkDTO declares an additional typed edge from this frame to another.
// Links carry no spatial payload; they exist for non-RT relations such
// as semantic annotations between frames.
type LinkDTO struct {
	To   string `yaml:"to"`
	Type string `yaml:"type"`
}
