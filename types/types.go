package types

import (
	"slices"

	"github.com/charmbracelet/bubbles/list"
)

// RecordData carries the fields used to build a ModelRecord.
type RecordData struct {
	ID          string
	Name        string
	Developer   string
	ReleaseDate string
	Category    Category
	Price       string
	APIPrice    string
	Description string
	Features    []string
	Tags        []string
	Badge       string
	Link        string
}

// ModelRecord is one immutable catalog entry describing a generative-AI model
type ModelRecord struct {
	id          string
	name        string
	developer   string
	releaseDate string
	category    Category
	price       string
	apiPrice    string
	description string
	features    []string
	tags        []string
	badge       string
	link        string
}

// NewModelRecord creates a new ModelRecord, copying the slices in d
func NewModelRecord(d RecordData) ModelRecord {
	return ModelRecord{
		id:          d.ID,
		name:        d.Name,
		developer:   d.Developer,
		releaseDate: d.ReleaseDate,
		category:    d.Category,
		price:       d.Price,
		apiPrice:    d.APIPrice,
		description: d.Description,
		features:    slices.Clone(d.Features),
		tags:        slices.Clone(d.Tags),
		badge:       d.Badge,
		link:        d.Link,
	}
}

// Getters for ModelRecord fields
func (r ModelRecord) ID() string          { return r.id }
func (r ModelRecord) Name() string        { return r.name }
func (r ModelRecord) Developer() string   { return r.developer }
func (r ModelRecord) ReleaseDate() string { return r.releaseDate }
func (r ModelRecord) Category() Category  { return r.category }
func (r ModelRecord) Price() string       { return r.price }
func (r ModelRecord) APIPrice() string    { return r.apiPrice }
func (r ModelRecord) Badge() string       { return r.badge }
func (r ModelRecord) Link() string        { return r.link }
func (r ModelRecord) Features() []string  { return slices.Clone(r.features) }
func (r ModelRecord) Tags() []string      { return slices.Clone(r.tags) }

// HasLink reports whether the record carries an outbound URL.
func (r ModelRecord) HasLink() bool { return r.link != "" }

// Data returns the record fields as a RecordData.
func (r ModelRecord) Data() RecordData {
	return RecordData{
		ID:          r.id,
		Name:        r.name,
		Developer:   r.developer,
		ReleaseDate: r.releaseDate,
		Category:    r.category,
		Price:       r.price,
		APIPrice:    r.apiPrice,
		Description: r.description,
		Features:    r.Features(),
		Tags:        r.Tags(),
		Badge:       r.badge,
		Link:        r.link,
	}
}

// list.Item interface implementation
func (r ModelRecord) Title() string       { return r.name }
func (r ModelRecord) Description() string { return r.description }
func (r ModelRecord) FilterValue() string { return r.name }

// Compile-time check that ModelRecord implements list.Item
var _ list.Item = ModelRecord{}

// CatalogSource is the read-only data source the browser consumes.
// It is populated once at start-up and never mutated.
type CatalogSource interface {
	Records() []ModelRecord
	Lookup(id string) (ModelRecord, bool)
}
