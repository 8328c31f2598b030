package display

// Setting is one configuration key and its effective value.
type Setting struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func (s *Setting) Fields() []Field {
	value, style := s.Value, StylePath
	if value == "" {
		value, style = "(unset)", StyleMuted
	}
	return []Field{{Label: s.Key, Value: value, Style: style}}
}
