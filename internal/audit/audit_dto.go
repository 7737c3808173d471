package audit

import "time"

type EntryResponse struct {
	ID         string `json:"id"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	EntityName string `json:"entity_name"`
	ActorID    string `json:"actor_id"`
	OccurredAt string `json:"occurred_at"`
}

func mapToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID.String(),
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		EntityName: e.EntityName,
		ActorID:    e.ActorID,
		OccurredAt: e.OccurredAt.Format(time.RFC3339),
	}
}

func mapToListResponse(entries []Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = mapToResponse(e)
	}
	return res
}
