package statsapi

// shotChartResponse is the shotchartdetail JSON shape from stats.nba.com:
// a list of result sets, each a header row plus untyped value rows.
type shotChartResponse struct {
	Resource   string      `json:"resource"`
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// columns indexes a result set's headers for by-name row access.
type columns map[string]int

func indexColumns(headers []string) columns {
	cols := make(columns, len(headers))
	for i, h := range headers {
		cols[h] = i
	}
	return cols
}

func (c columns) str(row []any, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	if v, ok := row[i].(string); ok {
		return v
	}
	return ""
}

func (c columns) num(row []any, name string) float64 {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return 0
	}
	if v, ok := row[i].(float64); ok {
		return v
	}
	return 0
}
