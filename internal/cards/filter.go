package cards

import "strings"

type FilterOptions struct {
	Positions []Position
	Teams     []string
	FreeWords string
	PhotoMode string // "any", "with", "without"
}

func containsFold(hay string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(strings.ToLower(hay), strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// Filter selects roster entries matching every non-empty option.
func Filter(players []PlayerData, opt FilterOptions) []PlayerData {
	var out []PlayerData
	for _, p := range players {
		if opt.PhotoMode == "with" && !p.HasPhoto() {
			continue
		}
		if opt.PhotoMode == "without" && p.HasPhoto() {
			continue
		}
		if len(opt.Positions) > 0 {
			matched := false
			for _, pos := range opt.Positions {
				if p.Position == pos {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if len(opt.Teams) > 0 && !containsFold(p.TeamName, opt.Teams) {
			continue
		}
		if opt.FreeWords != "" {
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				k = strings.ToLower(k)
				if !strings.Contains(strings.ToLower(p.FullName), k) &&
					!strings.Contains(strings.ToLower(p.TeamName), k) &&
					!strings.Contains(strings.ToLower(p.Address), k) &&
					!strings.Contains(strings.ToLower(p.TwitterHandle), k) &&
					!strings.Contains(strings.ToLower(p.InstagramHandle), k) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
