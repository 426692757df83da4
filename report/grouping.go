package report

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DestinationGroup holds the records bound for one destination branch.
type DestinationGroup struct {
	BranchID int64    `json:"branchId"`
	Name     string   `json:"name"`
	Records  []Record `json:"records"`

	first int // position of the group's first record in the input
}

// GroupByDestination partitions records by destination branch id. Groups come
// out in first-seen order and keep the input order of their records.
func GroupByDestination(records []Record) []DestinationGroup {
	index := make(map[int64]int)
	var groups []DestinationGroup
	for i, r := range records {
		pos, ok := index[r.ToBranchID]
		if !ok {
			pos = len(groups)
			index[r.ToBranchID] = pos
			groups = append(groups, DestinationGroup{BranchID: r.ToBranchID, Name: r.ToBranchName, first: i})
		}
		groups[pos].Records = append(groups[pos].Records, r)
	}
	return groups
}

// OrderGroupsByDestinationName sorts groups by upper-cased destination name.
// Equal names fall back to branch id and then first-seen position so repeated
// runs always agree.
func OrderGroupsByDestinationName(groups []DestinationGroup) []DestinationGroup {
	upper := cases.Upper(language.Und)
	keys := make(map[int64]string, len(groups))
	for _, g := range groups {
		keys[g.BranchID] = upper.String(g.Name)
	}
	out := slices.Clone(groups)
	slices.SortStableFunc(out, func(a, b DestinationGroup) int {
		return cmp.Or(
			cmp.Compare(keys[a.BranchID], keys[b.BranchID]),
			cmp.Compare(a.BranchID, b.BranchID),
			cmp.Compare(a.first, b.first),
		)
	})
	return out
}

// OrderRecordsWithinGroup sorts each group's records by numeric LR number.
// The input groups are left untouched.
func OrderRecordsWithinGroup(groups []DestinationGroup) []DestinationGroup {
	out := make([]DestinationGroup, len(groups))
	for i, g := range groups {
		g.Records = SortByLR(g.Records)
		out[i] = g
	}
	return out
}

// Flatten concatenates the groups' records in group order.
func Flatten(groups []DestinationGroup) []Record {
	n := 0
	for _, g := range groups {
		n += len(g.Records)
	}
	out := make([]Record, 0, n)
	for _, g := range groups {
		out = append(out, g.Records...)
	}
	return out
}

// SortByLR returns a copy of records ordered by LR number, ties by sequence.
func SortByLR(records []Record) []Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b Record) int {
		return cmp.Or(cmp.Compare(a.LR, b.LR), cmp.Compare(a.Seq, b.Seq))
	})
	return out
}

// groupedInPrintOrder is the grouping shared by the motor body and every summary.
func groupedInPrintOrder(records []Record) []DestinationGroup {
	return OrderRecordsWithinGroup(OrderGroupsByDestinationName(GroupByDestination(records)))
}
