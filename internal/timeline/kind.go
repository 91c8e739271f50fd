package timeline

// Kind is the category of media a clip represents. Each kind carries its
// own painter and resize policy; the shared contract is the interaction
// and geometry model, not the paint code.
type Kind int

const (
	KindVideo Kind = iota
	KindImage
	KindAudio
	KindText
	KindEffect
)

var kindNames = map[Kind]string{
	KindVideo:  "video",
	KindImage:  "image",
	KindAudio:  "audio",
	KindText:   "text",
	KindEffect: "effect",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a category string back to its Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, &ConfigurationError{Reason: "unknown clip category " + s}
}

// Policy returns the resize policy for the kind. Vertical resize is
// globally locked: tracks have fixed row height.
func (k Kind) Policy() Policy {
	return Policy{Horizontal: true}
}
