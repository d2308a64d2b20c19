package loader

import (
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/quickeda-cli/internal/dataset"
)

// categoricalMaxRatio is the unique-to-non-null ratio at or below which
// a string column is declared categorical rather than free text.
const categoricalMaxRatio = 0.5

// inferType assigns a declared type to a column from its sampled
// non-null values. Every value must parse for a typed declaration;
// priority is boolean, integer, float, datetime. Anything else is
// categorical or text depending on cardinality. A column with no
// observed values is declared text.
func inferType(values []string) dataset.DType {
	if len(values) == 0 {
		return dataset.Text
	}
	allBool, allInt, allFloat, allTime := true, true, true, true
	unique := make(map[string]struct{}, len(values))
	for _, v := range values {
		unique[v] = struct{}{}
		if allBool && !parseBoolMaybe(v) {
			allBool = false
		}
		if allInt {
			if _, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
				allFloat = false
			}
		}
		if allTime && !parseTimeMaybe(v) {
			allTime = false
		}
	}
	switch {
	case allBool:
		return dataset.Boolean
	case allInt:
		return dataset.Integer
	case allFloat:
		return dataset.Float
	case allTime:
		return dataset.Datetime
	}
	ratio := float64(len(unique)) / float64(len(values))
	if ratio <= categoricalMaxRatio {
		return dataset.Categorical
	}
	return dataset.Text
}

func parseBoolMaybe(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "false":
		return true
	}
	return false
}

var timeLayouts = []string{
	time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
	"2006-01-02 15:04", "2006-01-02 15:04:05", "1/2/2006 15:04", "1/2/2006 15:04:05",
}

func parseTimeMaybe(s string) bool {
	s = strings.TrimSpace(s)
	for _, l := range timeLayouts {
		if _, err := time.Parse(l, s); err == nil {
			return true
		}
	}
	return false
}
