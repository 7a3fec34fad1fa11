package sentence

// SemGraph is the semantic graph extracted from a whole document: entities
// and the frames (relations) between them.
type SemGraph struct {
	Entities []Entity `json:"entities"`
	Frames   []Frame  `json:"frames"`
}

type Entity struct {
	ID    string `json:"id"`
	Lemma string `json:"lemma"`

	// Semantic class (person, location, ...)
	Class string `json:"class,omitempty"`
}

type Frame struct {
	ID    string     `json:"id"`
	Lemma string     `json:"lemma"`
	Args  []Argument `json:"args,omitempty"`
}

// Argument links a frame to an entity through a role. Entity is the id of
// the entity.
type Argument struct {
	Role   string `json:"role"`
	Entity string `json:"entity"`
}
