package model

// StatusField selects which status dimension an aggregation counts or filters on.
type StatusField string

const (
	FieldObjectStatus     StatusField = "Object Status"
	FieldContractorStatus StatusField = "Contractor Assessed Status"
	FieldGovernmentStatus StatusField = "Government Assessed Status"
)

// StatusRecord is one observed status mention tied to a source row in the
// RTVM table. A logical requirement row produces one record per verification
// entry found in its cell, so several records may share the same RowIndex.
// Records are immutable once produced; they live for a single load/filter cycle.
type StatusRecord struct {
	RowIndex         int
	ObjectStatus     string
	ContractorStatus string
	GovernmentStatus string
}

// Field returns the value of the requested status dimension.
func (r StatusRecord) Field(f StatusField) string {
	switch f {
	case FieldObjectStatus:
		return r.ObjectStatus
	case FieldContractorStatus:
		return r.ContractorStatus
	case FieldGovernmentStatus:
		return r.GovernmentStatus
	}
	return ""
}

// VerificationEntry is one delimited block parsed out of an
// "Assigned Verification Documents" cell. Fields whose "Key: Value" line is
// absent stay empty.
type VerificationEntry struct {
	ObjectIdentifier string
	DINumber         string
	GovernmentStatus string
	ContractorStatus string
}

// StatusCount is one row of the tabular counts view: how many times a status
// appears in the filtered record set versus the full record set.
type StatusCount struct {
	Status   string
	Filtered int
	Total    int
}
