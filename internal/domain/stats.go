package domain

import "github.com/google/uuid"

type StatusCounts struct {
	Pending             int64 `json:"pending"`
	InAnalysis          int64 `json:"inAnalysis"`
	ResolvedProvisional int64 `json:"resolvedProvisional"`
	ResolvedConfirmed   int64 `json:"resolvedConfirmed"`
	Archived            int64 `json:"archived"`
}

type CategoryCount struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int64     `json:"count"`
}

// Statistics is the aggregate dashboard view over all reports.
// ResolutionRate is confirmed resolutions over total, formatted "NN.NN%".
type Statistics struct {
	Total          int64            `json:"total"`
	ByStatus       StatusCounts     `json:"byStatus"`
	ByCategory     []*CategoryCount `json:"byCategory"`
	ResolutionRate string           `json:"resolutionRate"`
}
