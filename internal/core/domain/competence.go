package domain

// CompetenceFilterInput narrows a person search by competence ranges.
// Empty fields mean "not filtered by this criterion"; an input with no
// set fields requests no competence filtering at all.
type CompetenceFilterInput struct {
	Prefix string
	TIN    string
	File   string

	LicensePlateRegion string
	LicensePlateLetter string
	LicensePlateNumber string
}

// HasFilter reports whether any filter field is set.
func (f *CompetenceFilterInput) HasFilter() bool {
	if f == nil {
		return false
	}
	return f.Prefix != "" ||
		f.TIN != "" ||
		f.File != "" ||
		f.LicensePlateRegion != "" ||
		f.LicensePlateLetter != "" ||
		f.LicensePlateNumber != ""
}

// CompetenceMatches is the result of resolving a competence filter.
// Filtered distinguishes "no filter requested" from "filter applied
// with zero matches".
type CompetenceMatches struct {
	// Filtered is false when the input contained no filter fields.
	Filtered bool

	// IDs are the person resource IDs matching the filter. Empty with
	// Filtered true means the filter excludes everyone.
	IDs []int
}
