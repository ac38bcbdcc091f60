package holiday

type HolidayResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Date     string  `json:"date"`
	Type     string  `json:"type"`
	Location *string `json:"location,omitempty"`
}

type ImportResult struct {
	Format   string   `json:"format"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
