package cards

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// rosterColumns maps accepted header spellings to the canonical column name.
var rosterColumns = map[string]string{
	"full_name":        "full_name",
	"name":             "full_name",
	"dob":              "dob",
	"date_of_birth":    "dob",
	"team_name":        "team_name",
	"team":             "team_name",
	"address":          "address",
	"position":         "position",
	"twitter":          "twitter_handle",
	"twitter_handle":   "twitter_handle",
	"instagram":        "instagram_handle",
	"instagram_handle": "instagram_handle",
	"photo":            "player_image",
	"player_image":     "player_image",
}

// LoadRosterFile loads a team roster CSV from disk.
func LoadRosterFile(path string) ([]PlayerData, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	players, err := LoadRoster(fp)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return players, nil
}

// LoadRoster reads one player per CSV row. The header row names the columns;
// unknown columns are ignored and full_name is required.
func LoadRoster(r io.Reader) ([]PlayerData, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("roster has no header")
	}

	cols := map[string]int{}
	for i, h := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if canon, ok := rosterColumns[key]; ok {
			cols[canon] = i
		}
	}
	if _, ok := cols["full_name"]; !ok {
		return nil, fmt.Errorf("roster header is missing a full_name column")
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []PlayerData{}
	for i, row := range rows[1:] {
		p := PlayerData{
			PlayerImage:     get(row, "player_image"),
			FullName:        get(row, "full_name"),
			DOB:             get(row, "dob"),
			TeamName:        get(row, "team_name"),
			Address:         get(row, "address"),
			TwitterHandle:   get(row, "twitter_handle"),
			InstagramHandle: get(row, "instagram_handle"),
		}
		if p.FullName == "" {
			// blank lines in spreadsheet exports
			continue
		}
		pos, err := ParsePosition(get(row, "position"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		p.Position = pos
		out = append(out, p)
	}
	return out, nil
}
