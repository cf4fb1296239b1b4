package testmodels

import "github.com/go-openapi/strfmt"

// Dataset is the canonical single-table record used by integration tests
// and examples: a composite pk/sk key plus a type discriminator, the
// layout the batch writer and codec are exercised against.
type Dataset struct {

	// Partition key, e.g. "DATASET#<id>".
	// Required: true
	PK string `json:"Pk" dynamodbav:"pk"`

	// Sort key, e.g. "DATASET#<id>".
	// Required: true
	SK string `json:"Sk" dynamodbav:"sk"`

	// Record type discriminator.
	// Required: true
	ItemType string `json:"ItemType" dynamodbav:"itemtype"`

	// Creation time in epoch seconds.
	Created *int64 `json:"Created,omitempty" dynamodbav:"created,omitempty"`

	// Human-readable dataset name.
	Name string `json:"Name,omitempty" dynamodbav:"name,omitempty"`

	// Timestamp when the record was last refreshed.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt,omitempty" dynamodbav:"updatedat,omitempty"`
}
