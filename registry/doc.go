/*
Package registry manages record shape registration for RecordStore.

A record shape declares, per attribute, the tag the codec expects on the
wire (S, N, BOOL, ...) and whether the attribute must be present. The codec
consults the registry when decoding, so malformed record maps surface as
recoverable decode errors naming the offending field instead of partially
populated records.

Derived shapes:
Shapes are derived automatically from struct definitions the first time a
type is decoded. Attribute names follow dynamodbav tags, pointer and
omitempty fields are optional, and everything else is required:

	type Dataset struct {
	    PK       string  `dynamodbav:"pk"`
	    SK       string  `dynamodbav:"sk"`
	    ItemType string  `dynamodbav:"itemtype"`
	    Created  *uint64 `dynamodbav:"created,omitempty"`
	}

Explicit registration:
Derived shapes can be replaced when the wire contract is stricter or looser
than the struct suggests:

	registry.RegisterShape[Dataset](registry.Shape{
	    "pk":       {Kind: registry.KindString, Required: true},
	    "sk":       {Kind: registry.KindString, Required: true},
	    "itemtype": {Kind: registry.KindString, Required: true},
	    "created":  {Kind: registry.KindNumber},
	})

Declaration files:
Shapes can also be loaded from YAML documents and bound to Go types,
typically during initialization or through code generated by shapegen:

	if err := registry.LoadShapesFromFile("shapes.yaml"); err != nil { ... }
	if err := registry.BindShape[Dataset]("Dataset"); err != nil { ... }

The registry is thread-safe and should be populated during initialization,
typically in init() functions or through generated code.
*/
package registry
