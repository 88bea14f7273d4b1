package finance

// Palette is assigned to categories cyclically, in order of first occurrence.
var Palette = []string{
	"#4CAF50",
	"#2196F3",
	"#FF9800",
	"#E91E63",
	"#9C27B0",
	"#00BCD4",
	"#FFC107",
	"#795548",
}

type CategoryDistribution struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

func DistributionByLand(travels []Travel) []CategoryDistribution {
	return distribute(travels, func(t Travel) string { return t.Land })
}

func DistributionByDestination(travels []Travel) []CategoryDistribution {
	return distribute(travels, func(t Travel) string { return t.Destination })
}

func DistributionByGroup(l *Ledger, travels []Travel) []CategoryDistribution {
	return distribute(travels, func(t Travel) string { return l.GroupName(t.GroupID) })
}

func distribute(travels []Travel, labelOf func(Travel) string) []CategoryDistribution {
	index := make(map[string]int)
	var out []CategoryDistribution
	for _, t := range travels {
		label := labelOf(t)
		if label == "" {
			label = UnknownLabel
		}
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, CategoryDistribution{
				Label: label,
				Color: Palette[i%len(Palette)],
			})
		}
		out[i].Count++
	}
	return out
}
