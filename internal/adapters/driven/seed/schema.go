package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	})
	return schema, schemaErr
}

// Decode validates data against the resume schema and decodes it.
// Shape problems and duplicate ids within a collection are reported as
// domain.ErrSchemaViolation.
func Decode(data []byte) (domain.Resume, error) {
	s, err := compiledSchema()
	if err != nil {
		return domain.Resume{}, fmt.Errorf("compile schema: %w", err)
	}

	res, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		// The document is not JSON at all.
		return domain.Resume{}, fmt.Errorf("%w: %v", domain.ErrSchemaViolation, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return domain.Resume{}, fmt.Errorf("%w: %s", domain.ErrSchemaViolation, strings.Join(msgs, "; "))
	}

	var doc domain.Resume
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.Resume{}, fmt.Errorf("decode resume: %w", err)
	}

	if err := checkUniqueIDs(doc); err != nil {
		return domain.Resume{}, err
	}

	for i := range doc.Experience {
		if doc.Experience[i].Highlights == nil {
			doc.Experience[i].Highlights = []string{}
		}
	}
	return doc, nil
}

func checkUniqueIDs(doc domain.Resume) error {
	lists := []struct {
		name string
		ids  []int64
	}{
		{"skills", idsOf(doc.Skills, func(s domain.Skill) int64 { return s.ID })},
		{"experience", idsOf(doc.Experience, func(e domain.Experience) int64 { return e.ID })},
		{"education", idsOf(doc.Education, func(e domain.Education) int64 { return e.ID })},
		{"projects", idsOf(doc.Projects, func(p domain.Project) int64 { return p.ID })},
		{"certifications", idsOf(doc.Certifications, func(c domain.Certification) int64 { return c.ID })},
	}

	for _, l := range lists {
		seen := make(map[int64]bool, len(l.ids))
		for _, id := range l.ids {
			if seen[id] {
				return fmt.Errorf("%w: %s: duplicate id %d", domain.ErrSchemaViolation, l.name, id)
			}
			seen[id] = true
		}
	}
	return nil
}

func idsOf[T any](items []T, id func(T) int64) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}
