package responses

// SheetSync is the flat success body of a synchronization.
type SheetSync struct {
	Success bool   `json:"success"`
	Range   string `json:"range"`
	Sheet   string `json:"sheet"`
}

type DebugGrid struct {
	Sheet     string          `json:"sheet"`
	Range     string          `json:"range"`
	Rows      [][]string      `json:"rows"`
	DateCells []DebugDateCell `json:"date_cells"`
}

type DebugDateCell struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	A1     string `json:"a1"`
	Value  string `json:"value"`
}
