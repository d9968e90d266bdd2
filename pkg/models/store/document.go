package store

// Document is a raw transaction document exactly as a bank integration
// returned it. Field names differ per bank and record family; the report
// normalizer is the only consumer that interprets them.
type Document map[string]any

// SourceBatch is the contribution of a single bank integration to one
// report run. A failed fetch yields a batch with an empty Docs slice.
type SourceBatch struct {
	Bank string
	Docs []Document
}
