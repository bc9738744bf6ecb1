package request

import "strings"

// ImportEstimateRequest carries one raw EMS export to be imported for a claim.
// The claim id travels in the path; job_id ties the version to the repair
// order in the shop system.
type ImportEstimateRequest struct {
	JobID   string `json:"job_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (r ImportEstimateRequest) ResolveJobID() string {
	return strings.TrimSpace(r.JobID)
}

func (r ImportEstimateRequest) ResolveContent() string {
	return r.Content
}
