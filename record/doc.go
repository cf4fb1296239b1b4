/*
Package record implements the attribute codec: the conversion between typed
Go records and the raw record maps DynamoDB speaks.

A record map is a map of attribute names to tagged attribute values. SetKV
builds one a key at a time and chains:

	key := record.SetKV(record.SetKV(nil, "pk", "c4c"), "sk", "c4c")

Marshal and Unmarshal convert whole records:

	item, err := record.Marshal(dataset)
	out, err := record.Unmarshal[Dataset](item)

Unmarshal enforces the record shape registered for the target type (see
package registry): a required attribute that is missing, or an attribute
carrying the wrong tag, fails with a recoverable DecodeError naming the
offending field. Optional attributes absent from the map decode to the
field's zero value. For any well-formed record, Unmarshal(Marshal(r))
reproduces r.
*/
package record
