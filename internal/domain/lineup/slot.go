package lineup

const (
	SlotQB       = "QB"
	SlotRB       = "RB"
	SlotWR       = "WR"
	SlotTE       = "TE"
	SlotFlex     = "FLEX"
	SlotRBWRTE   = "RB/WR/TE"
	SlotDST      = "D/ST"
	SlotK        = "K"
	SlotBench    = "Bench"
	SlotIR       = "IR"
	DefaultOrder = 99
)

var slotOrder = map[string]int{
	SlotQB:     1,
	SlotRB:     2,
	SlotWR:     3,
	SlotTE:     4,
	SlotFlex:   5,
	SlotRBWRTE: 5,
	SlotDST:    6,
	SlotK:      7,
	SlotBench:  99,
	SlotIR:     100,
}

// SlotOrder ranks a rostered slot for display; unrecognized slots rank with Bench.
func SlotOrder(slot string) int {
	if order, ok := slotOrder[slot]; ok {
		return order
	}
	return DefaultOrder
}

func IsStarterSlot(slot string) bool {
	return slot != SlotBench && slot != SlotIR
}
