package response

import (
	"tripmatch/internal/usecase/commands"
)

type MatchResponse struct {
	Outcome   string   `json:"outcome"`
	GroupID   string   `json:"groupId,omitempty"`
	Members   []string `json:"members,omitempty"`
	PendingID string   `json:"pendingId,omitempty"`
}

func FromMatchResult(r *commands.MatchResult) *MatchResponse {
	resp := &MatchResponse{Outcome: string(r.Outcome)}
	switch r.Outcome {
	case commands.OutcomeFormed:
		resp.GroupID = r.Group.ID().String()
		resp.Members = r.Group.Members()
	case commands.OutcomeEnqueued:
		resp.PendingID = r.Pending.ID().String()
	}
	return resp
}

type ValidationDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
