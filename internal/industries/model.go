package industries

// Industry is a row in the industries table.
type Industry struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// WithCompanies is the list representation: an industry together with the
// codes of its associated companies. Companies is empty, never nil, for an
// industry without associations.
type WithCompanies struct {
	Industry
	Companies []string `json:"companies"`
}
