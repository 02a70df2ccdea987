package valuation

import "time"

// StatusInfo is the display-gating view of an investment's lifecycle state.
type StatusInfo struct {
	Status   Status
	Label    string
	IsActive bool

	// IsLocked means the record cannot be edited or acted on by the
	// investor right now (pending confirmation, mid-settlement, or inside
	// the lock-up window).
	IsLocked bool

	// LockupEndDate is populated for active investments only.
	LockupEndDate *time.Time
}

// ClassifyStatus maps status plus the accrual calculation into the small
// state machine used for display gating and withdrawal eligibility.
//
// Lifecycle: draft -> pending -> active -> {withdrawal_notice -> withdrawn}.
// rejected is terminal from pending; active stays active indefinitely if
// never withdrawn.
func ClassifyStatus(inv *Investment, asOf time.Time) StatusInfo {
	if inv == nil {
		return StatusInfo{Label: "Processing"}
	}

	switch inv.Status {
	case StatusDraft:
		return StatusInfo{Status: StatusDraft, Label: "Draft", IsActive: false, IsLocked: false}

	case StatusPending:
		return StatusInfo{Status: StatusPending, Label: "Pending", IsActive: false, IsLocked: true}

	case StatusWithdrawalNotice:
		// Frozen mid-settlement: the notice window is running.
		return StatusInfo{Status: StatusWithdrawalNotice, Label: "Withdrawal Processing", IsActive: false, IsLocked: true}

	case StatusWithdrawn:
		return StatusInfo{Status: StatusWithdrawn, Label: "Withdrawn", IsActive: false, IsLocked: false}

	case StatusActive:
		v := Calculate(inv, asOf)
		label := "Locked"
		if v.IsWithdrawable {
			label = "Available for Withdrawal"
		}
		return StatusInfo{
			Status:        StatusActive,
			Label:         label,
			IsActive:      true,
			IsLocked:      !v.IsWithdrawable,
			LockupEndDate: v.LockupEndDate,
		}

	default:
		return StatusInfo{Status: inv.Status, Label: "Processing"}
	}
}

// ClassifyStatusAt is the ISO-timestamp entry point; see CalculateAt for
// the timestamp contract.
func ClassifyStatusAt(inv *Investment, asOfISO string) (StatusInfo, error) {
	asOf, err := resolveInstant(asOfISO)
	if err != nil {
		return StatusInfo{}, err
	}
	return ClassifyStatus(inv, asOf), nil
}
