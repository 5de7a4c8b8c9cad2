package catalog

import "strings"

// Optional is a text value that may be absent.
type Optional struct {
	value string
	ok    bool
}

// Some returns a present Optional holding v.
func Some(v string) Optional {
	return Optional{value: v, ok: true}
}

// None returns an absent Optional.
func None() Optional {
	return Optional{}
}

// Text returns an Optional for element text. Empty or whitespace-only text is
// treated as absent; otherwise the text is kept verbatim.
func Text(s string) Optional {
	if strings.TrimSpace(s) == "" {
		return None()
	}
	return Some(s)
}

func (o Optional) Get() (string, bool) {
	return o.value, o.ok
}

func (o Optional) Present() bool {
	return o.ok
}

// OrEmpty returns the value or "" when absent.
func (o Optional) OrEmpty() string {
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Optional) Ptr() *string {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Field names a recognised record field.
type Field string

const (
	FieldTitle     Field = "title"
	FieldAuthor    Field = "author"
	FieldGenre     Field = "genre"
	FieldYear      Field = "year"
	FieldPublisher Field = "publisher"
)

// Fields lists every recognised field.
var Fields = []Field{FieldTitle, FieldAuthor, FieldGenre, FieldYear, FieldPublisher}

// RawRecord holds the unvalidated field values of one record element.
type RawRecord struct {
	Title     Optional
	Author    Optional
	Genre     Optional
	Year      Optional
	Publisher Optional
}

// Set assigns v to the named field. Absent values never overwrite a present
// one, so an empty repeated element keeps the earlier value. It reports false
// for unknown fields.
func (r *RawRecord) Set(f Field, v Optional) bool {
	slot := r.slot(f)
	if slot == nil {
		return false
	}
	if v.Present() {
		*slot = v
	}
	return true
}

// Get returns the named field; unknown fields are absent.
func (r RawRecord) Get(f Field) Optional {
	if slot := r.slot(f); slot != nil {
		return *slot
	}
	return None()
}

func (r *RawRecord) slot(f Field) *Optional {
	switch f {
	case FieldTitle:
		return &r.Title
	case FieldAuthor:
		return &r.Author
	case FieldGenre:
		return &r.Genre
	case FieldYear:
		return &r.Year
	case FieldPublisher:
		return &r.Publisher
	default:
		return nil
	}
}

// ValidatedRecord is a record that passed every rule.
type ValidatedRecord struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Year      int    `json:"year"`
	Publisher string `json:"publisher"`
}

// Reason explains why a record was rejected.
type Reason string

const (
	ReasonInvalidYear      Reason = "Invalid year"
	ReasonInvalidPublisher Reason = "Invalid publisher"
)

func (r Reason) String() string {
	return string(r)
}

// RejectedRecord is a record that failed a rule. Title is nil when the record
// had no title.
type RejectedRecord struct {
	Title  *string `json:"title"`
	Reason Reason  `json:"reason"`
}

// Result is the outcome of validating one record: exactly one of the valid or
// rejected forms is set.
type Result struct {
	valid    *ValidatedRecord
	rejected *RejectedRecord
}

func Accepted(rec ValidatedRecord) Result {
	return Result{valid: &rec}
}

func Rejected(rec RejectedRecord) Result {
	return Result{rejected: &rec}
}

func (r Result) IsValid() bool {
	return r.valid != nil
}

// Valid returns the validated record; ok is false for a rejection.
func (r Result) Valid() (ValidatedRecord, bool) {
	if r.valid == nil {
		return ValidatedRecord{}, false
	}
	return *r.valid, true
}

// Rejection returns the rejected record; ok is false for a valid result.
func (r Result) Rejection() (RejectedRecord, bool) {
	if r.rejected == nil {
		return RejectedRecord{}, false
	}
	return *r.rejected, true
}

// ResultSet partitions the records of one document in document order.
type ResultSet struct {
	Valid   []ValidatedRecord `json:"validBooks"`
	Invalid []RejectedRecord  `json:"invalidBooks"`
}

// NewResultSet returns an empty set whose slices serialize as [].
func NewResultSet() *ResultSet {
	return &ResultSet{
		Valid:   []ValidatedRecord{},
		Invalid: []RejectedRecord{},
	}
}

// Add appends res to the matching partition.
func (s *ResultSet) Add(res Result) {
	if rec, ok := res.Valid(); ok {
		s.Valid = append(s.Valid, rec)
		return
	}
	if rec, ok := res.Rejection(); ok {
		s.Invalid = append(s.Invalid, rec)
	}
}

// Len returns the total number of records in the set.
func (s *ResultSet) Len() int {
	return len(s.Valid) + len(s.Invalid)
}
