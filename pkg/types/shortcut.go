package types

// Shortcut is one launcher entry from a chimera.<platform>.yaml file.
// Dir and Params are pointers because their presence matters: a shortcut
// only refers to an external file when both keys are set.
type Shortcut struct {
	Name   string   `yaml:"name"`
	Cmd    string   `yaml:"cmd"`
	Dir    *string  `yaml:"dir,omitempty"`
	Params *string  `yaml:"params,omitempty"`
	Hidden bool     `yaml:"hidden,omitempty"`
	Banner string   `yaml:"banner,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
}

// HasFile reports whether the shortcut carries both dir and params.
func (s Shortcut) HasFile() bool {
	return s.Dir != nil && s.Params != nil
}
