package report

import "sort"

// Roster is the normalized view of a slot list: non-empty soldiers in
// rank order plus a by-name index.
type Roster struct {
	soldiers []*Soldier
	// slotOrder holds the same soldiers in their original slot order.
	slotOrder []*Soldier
	byName    map[string]*Soldier
}

// Normalize drops empty slots and stable-sorts the rest by rank.
// Duplicate names are not merged; the index keeps the first one seen.
func Normalize(slots []*Soldier) Roster {
	soldiers := make([]*Soldier, 0, len(slots))
	byName := make(map[string]*Soldier, len(slots))
	for _, slot := range slots {
		if slot == nil {
			continue
		}
		soldiers = append(soldiers, slot)
		if _, exists := byName[slot.Name]; !exists {
			byName[slot.Name] = slot
		}
	}
	slotOrder := append([]*Soldier(nil), soldiers...)
	sortByRank(soldiers)
	return Roster{soldiers: soldiers, slotOrder: slotOrder, byName: byName}
}

// Soldiers returns the rank-sorted soldiers. The slice is shared; do not modify it.
func (r Roster) Soldiers() []*Soldier {
	return r.soldiers
}

// InSlotOrder returns the soldiers in the order their slots were given.
func (r Roster) InSlotOrder() []*Soldier {
	return r.slotOrder
}

func (r Roster) Len() int {
	return len(r.soldiers)
}

func (r Roster) Lookup(name string) (*Soldier, bool) {
	soldier, ok := r.byName[name]
	return soldier, ok
}

// Resolve maps member names to soldiers, silently dropping names that are
// not on the roster, and returns them in rank order. Soldiers of equal rank
// keep the order of names.
func (r Roster) Resolve(names []string) []*Soldier {
	found := make([]*Soldier, 0, len(names))
	for _, name := range names {
		if soldier, ok := r.byName[name]; ok {
			found = append(found, soldier)
		}
	}
	sortByRank(found)
	return found
}

func sortByRank(soldiers []*Soldier) {
	sort.SliceStable(soldiers, func(i, j int) bool {
		return soldiers[i].Rank.Index() < soldiers[j].Rank.Index()
	})
}
