package types

import "time"

// SalaryRange represents the advertised salary range for a posting
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Posting represents a single already-parsed job posting from an external feed.
// Postings are immutable once scored; unknown feed fields are dropped on decode.
type Posting struct {
	ID       string       `json:"id" validate:"required"`
	Title    string       `json:"title"`
	Company  string       `json:"company"`
	Skills   []string     `json:"skills"`
	Salary   *SalaryRange `json:"salary,omitempty"` // absent salary degrades the salary-fit term to neutral
	Location string       `json:"location,omitempty"`
	Remote   bool         `json:"remote,omitempty"`
	PostedAt time.Time    `json:"posted_at"`
}

// Validate checks that the posting carries the required fields.
// An empty skill list is valid; a missing identifier is not.
func (p *Posting) Validate() error {
	if p == nil {
		return &InvalidInputError{Field: "posting", Message: "posting is nil"}
	}
	if p.ID == "" {
		return &InvalidInputError{Field: "id", Message: "posting identifier is required"}
	}
	if p.Salary != nil && p.Salary.Max < p.Salary.Min {
		return &InvalidInputError{Field: "salary", Message: "salary max is below salary min"}
	}
	return nil
}
