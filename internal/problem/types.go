// Package problem owns problem metadata records and their registry.
//
// Ownership boundary:
// - metadata record shape (difficulty, tags, types, links)
// - registry primitives keyed by problem id
// - manifest loading
//
// Metadata lives in explicit records attached by id; nothing here alters
// control flow based on it.
package problem

// Difficulty grades a problem.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Tag classifies a problem within the closed tag set. Free-text
// classification goes through Meta.CustomTag instead.
type Tag string

const (
	TagArray      Tag = "array"
	TagString     Tag = "string"
	TagLinkedList Tag = "linked-list"
	TagTree       Tag = "tree"
	TagGraph      Tag = "graph"
	TagDP         Tag = "dp"
	TagMath       Tag = "math"
	TagOther      Tag = "other"
)

func (t Tag) Valid() bool {
	switch t {
	case TagArray, TagString, TagLinkedList, TagTree, TagGraph, TagDP, TagMath, TagOther:
		return true
	}
	return false
}

// Kind marks the solution form a problem expects.
type Kind string

const (
	KindFunction Kind = "function"
	KindDesign   Kind = "design"
	KindSQL      Kind = "sql"
	KindShell    Kind = "shell"
)

func (k Kind) Valid() bool {
	switch k {
	case KindFunction, KindDesign, KindSQL, KindShell:
		return true
	}
	return false
}

// Meta is the metadata record for one problem.
type Meta struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	URL         string     `yaml:"url"`
	Difficulty  Difficulty `yaml:"difficulty"`
	Tag         Tag        `yaml:"tag"`
	CustomTag   string     `yaml:"custom_tag"`
	Kinds       []Kind     `yaml:"kinds"`
	CustomKinds []string   `yaml:"custom_kinds"`
	Links       []string   `yaml:"links"`
}
