package problem

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	ErrProblemExists   = errors.New("problem already registered")
	ErrInvalidMetadata = errors.New("invalid problem metadata")
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Registry stores problem metadata by stable identifier.
type Registry struct {
	items map[string]Meta
}

// NewRegistry creates an empty problem registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Meta)}
}

// ValidateMetadata checks required fields, id format, and enum values.
func ValidateMetadata(meta Meta) error {
	id := strings.TrimSpace(meta.ID)
	title := strings.TrimSpace(meta.Title)
	if id == "" || title == "" {
		return fmt.Errorf("%w: id and title are required", ErrInvalidMetadata)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%w: invalid id format %q", ErrInvalidMetadata, id)
	}
	if meta.Difficulty != "" && !meta.Difficulty.Valid() {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidMetadata, meta.Difficulty)
	}
	if meta.Tag != "" && !meta.Tag.Valid() {
		return fmt.Errorf("%w: unknown tag %q", ErrInvalidMetadata, meta.Tag)
	}
	for _, k := range meta.Kinds {
		if !k.Valid() {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidMetadata, k)
		}
	}
	return nil
}

// Register adds a metadata record to the registry.
func (r *Registry) Register(meta Meta) error {
	if err := ValidateMetadata(meta); err != nil {
		return err
	}
	if _, ok := r.items[meta.ID]; ok {
		return fmt.Errorf("%w: %s", ErrProblemExists, meta.ID)
	}
	r.items[meta.ID] = meta
	return nil
}

// Resolve returns a problem's metadata by id.
func (r *Registry) Resolve(id string) (Meta, bool) {
	meta, ok := r.items[id]
	return meta, ok
}

// List returns all records in deterministic order by id.
func (r *Registry) List() []Meta {
	list := make([]Meta, 0, len(r.items))
	for _, meta := range r.items {
		list = append(list, meta)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// IDs returns all registered ids in deterministic order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len reports the number of registered problems.
func (r *Registry) Len() int {
	return len(r.items)
}
