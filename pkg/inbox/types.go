// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package inbox

type StartConversationRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
	Channel    string `json:"channel" validate:"required,oneof=WHATSAPP SMS EMAIL"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4096"`
}

// AssignRequest sets the assignee; a null or empty assignee_id unassigns.
type AssignRequest struct {
	AssigneeID *string `json:"assignee_id" validate:"omitempty,uuid"`
}

// normalize turns an empty assignee into nil, which the uuid rule would
// otherwise reject since a non-nil pointer always counts as set.
func (r *AssignRequest) normalize() {
	if r.AssigneeID != nil && *r.AssigneeID == "" {
		r.AssigneeID = nil
	}
}

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN PENDING CLOSED"`
}
