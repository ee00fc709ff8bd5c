package request

import "strings"

type DeclineTransferRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r DeclineTransferRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}
