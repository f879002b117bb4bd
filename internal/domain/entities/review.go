package entities

import "errors"

// ToolReview is a review a person wrote about a tool they borrowed.
type ToolReview struct {
	ID       uint
	ToolID   uint
	PersonID uint
	Rating   int
	Comment  string
}

func (r *ToolReview) Validate() error {
	if r.ToolID == 0 {
		return errors.New("review must reference a tool")
	}
	if r.PersonID == 0 {
		return errors.New("review must reference its author")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

// PersonReview is a review written about a person, for example after a
// lending exchange.
type PersonReview struct {
	ID         uint
	PersonID   uint
	ReviewerID uint
	Rating     int
	Comment    string
}

func (r *PersonReview) Validate() error {
	if r.PersonID == 0 {
		return errors.New("review must reference its subject")
	}
	if r.ReviewerID == 0 {
		return errors.New("review must reference its author")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}
