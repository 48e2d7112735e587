package approval

// Aggregate computes the overall status of a request from its approvers and
// their decisions. It is pure and total.
//
// A required rejection is terminal. Otherwise the request is approved once every
// required approver has approved. Optional approvers never move the result, and
// an approver with no recorded decision counts as pending.
func Aggregate(approvers []Approver, decisions map[string]Decision) Status {
	if len(approvers) == 0 {
		return StatusNoApprovals
	}

	allApproved := true
	for _, a := range approvers {
		if !a.Required {
			continue
		}
		switch decisionOf(a.UserID, decisions) {
		case DecisionRejected:
			return StatusRejected
		case DecisionApproved:
		default:
			allApproved = false
		}
	}

	if allApproved {
		return StatusApproved
	}
	return StatusPending
}

// Summarize returns Aggregate plus the requested and completed counters.
func Summarize(approvers []Approver, decisions map[string]Decision) Summary {
	completed := 0
	for _, a := range approvers {
		if decisionOf(a.UserID, decisions) != DecisionPending {
			completed++
		}
	}
	return Summary{
		Status:    Aggregate(approvers, decisions),
		Requested: len(approvers),
		Completed: completed,
	}
}

func decisionOf(userID string, decisions map[string]Decision) Decision {
	d, ok := decisions[userID]
	if !ok || !d.Valid() {
		return DecisionPending
	}
	return d
}
