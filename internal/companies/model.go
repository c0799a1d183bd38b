package companies

// Company is a row in the companies table.
type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Summary is the list representation: code and name only.
type Summary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Detail is the detail representation, including the ids of related
// invoices and the codes of associated industries.
type Detail struct {
	Company
	Invoices   []int64  `json:"invoices"`
	Industries []string `json:"industries"`
}
