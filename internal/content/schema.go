// Package content implements the portfolio content document: its schema,
// path-addressed mutation, and the in-memory edit session that buffers
// mutations between loads and saves.
package content

import (
	"errors"
	"fmt"
)

// Document is one owner's full portfolio content, keyed by section name.
// Values inside a section are JSON-shaped: string, float64 (or int when
// built in Go), map[string]any for nested records, and []any for ordered
// lists.
type Document map[string]Section

// Section maps field names to values within one top-level section.
type Section = map[string]any

// Kind classifies the value a schema field may hold.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindRecord
	KindList       // ordered list of records
	KindStringList // ordered list of plain strings
)

// FieldSpec declares the shape of one field. For KindRecord, Fields holds
// the nested record's shape; for KindList it holds the per-element shape.
type FieldSpec struct {
	Kind   Kind
	Fields map[string]FieldSpec
}

// Mutation and validation errors. Mutator errors abort the call and leave
// the prior document untouched.
var (
	ErrUnknownSection = errors.New("unknown section")
	ErrInvalidPath    = errors.New("invalid path")
	ErrOutOfRange     = errors.New("index out of range")
	ErrInvalidShape   = errors.New("invalid document shape")
)

// statsShape is shared by about.stats and about.statsLabels.
var statsShape = map[string]FieldSpec{
	"experience": {Kind: KindString},
	"projects":   {Kind: KindString},
	"clients":    {Kind: KindString},
}

// Sections is the closed set of top-level sections and their declared
// fields. Anything outside this map is invalid input.
var Sections = map[string]map[string]FieldSpec{
	"header": {
		"logo":     {Kind: KindString},
		"logoType": {Kind: KindString},
		"links":    {Kind: KindStringList},
		"cta":      {Kind: KindString},
	},
	"hero": {
		"badge":        {Kind: KindString},
		"titleLine1":   {Kind: KindString},
		"titleLine2":   {Kind: KindString},
		"subtitle":     {Kind: KindString},
		"ctaText":      {Kind: KindString},
		"image":        {Kind: KindString},
		"contactEmail": {Kind: KindString},
		"contactPhone": {Kind: KindString},
		"website":      {Kind: KindString},
	},
	"about": {
		"greeting":    {Kind: KindString},
		"name":        {Kind: KindString},
		"prefix":      {Kind: KindString},
		"role1":       {Kind: KindString},
		"role2":       {Kind: KindString},
		"suffix":      {Kind: KindString},
		"description": {Kind: KindString},
		"buttonText":  {Kind: KindString},
		"stats":       {Kind: KindRecord, Fields: statsShape},
		"statsLabels": {Kind: KindRecord, Fields: statsShape},
		"image":       {Kind: KindString},
	},
	"services": {
		"badge":      {Kind: KindString},
		"title":      {Kind: KindString},
		"subtitle":   {Kind: KindString},
		"buttonText": {Kind: KindString},
		"cards": {Kind: KindList, Fields: map[string]FieldSpec{
			"id":          {Kind: KindNumber},
			"title":       {Kind: KindString},
			"description": {Kind: KindString},
			"iconType":    {Kind: KindString},
		}},
	},
	"blog": {
		"title":         {Kind: KindString},
		"subtitle":      {Kind: KindString},
		"commentsLabel": {Kind: KindString},
		"posts": {Kind: KindList, Fields: map[string]FieldSpec{
			"id":       {Kind: KindNumber},
			"image":    {Kind: KindString},
			"date":     {Kind: KindString},
			"comments": {Kind: KindNumber},
			"title":    {Kind: KindString},
			"body":     {Kind: KindString},
		}},
	},
	"cta": {
		"titleLine1": {Kind: KindString},
		"titleLine2": {Kind: KindString},
		"description": {Kind: KindString},
		"buttonText":  {Kind: KindString},
	},
	"clients": {
		"title":    {Kind: KindString},
		"subtitle": {Kind: KindString},
		"logos": {Kind: KindList, Fields: map[string]FieldSpec{
			"id":  {Kind: KindNumber},
			"src": {Kind: KindString},
			"alt": {Kind: KindString},
		}},
	},
	"footer": {
		"socials": {Kind: KindList, Fields: map[string]FieldSpec{
			"id":       {Kind: KindNumber},
			"platform": {Kind: KindString},
			"url":      {Kind: KindString},
		}},
	},
	"seo": {
		"metaTitle":       {Kind: KindString},
		"metaDescription": {Kind: KindString},
		"ogImage":         {Kind: KindString},
	},
	"analytics": {
		"totalViews": {Kind: KindNumber},
	},
}

// KnownSection reports whether name is one of the ten sections.
func KnownSection(name string) bool {
	_, ok := Sections[name]
	return ok
}

// Validate performs the save-time shape check on a full document: every
// top-level section must be known, and every present field must match its
// declared kind. Missing fields are tolerated; no coercion is performed.
func Validate(doc Document) error {
	for name, section := range doc {
		spec, ok := Sections[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
		for field, value := range section {
			fs, ok := spec[field]
			if !ok {
				return fmt.Errorf("%w: section %q has no field %q", ErrInvalidShape, name, field)
			}
			if err := validateValue(value, fs); err != nil {
				return fmt.Errorf("%w: %s.%s: %v", ErrInvalidShape, name, field, err)
			}
		}
	}
	return nil
}

func validateValue(value any, fs FieldSpec) error {
	switch fs.Kind {
	case KindString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case KindNumber:
		if !isNumber(value) {
			return fmt.Errorf("expected number, got %T", value)
		}
	case KindRecord:
		rec, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("expected record, got %T", value)
		}
		return validateRecord(rec, fs.Fields)
	case KindList:
		list, ok := value.([]any)
		if !ok {
			return fmt.Errorf("expected list, got %T", value)
		}
		for i, elem := range list {
			rec, ok := elem.(map[string]any)
			if !ok {
				return fmt.Errorf("element %d: expected record, got %T", i, elem)
			}
			if err := validateRecord(rec, fs.Fields); err != nil {
				return fmt.Errorf("element %d: %v", i, err)
			}
		}
	case KindStringList:
		list, ok := value.([]any)
		if !ok {
			return fmt.Errorf("expected list, got %T", value)
		}
		for i, elem := range list {
			if _, ok := elem.(string); !ok {
				return fmt.Errorf("element %d: expected string, got %T", i, elem)
			}
		}
	}
	return nil
}

func validateRecord(rec map[string]any, fields map[string]FieldSpec) error {
	for name, value := range rec {
		fs, ok := fields[name]
		if !ok {
			return fmt.Errorf("unknown field %q", name)
		}
		if err := validateValue(value, fs); err != nil {
			return fmt.Errorf("%s: %v", name, err)
		}
	}
	return nil
}

func isNumber(value any) bool {
	switch value.(type) {
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}
