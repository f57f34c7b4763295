package experience

// Entry is a single position from a parsed resume. RawDuration keeps the
// duration text exactly as the upstream parser produced it; everything
// derived from it goes through the parsing helpers in this package.
type Entry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	RawDuration string `json:"duration"`
	Description string `json:"description"`
}
