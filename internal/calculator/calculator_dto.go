package calculator

type CreateComputationRequest struct {
	ReceiptTitle     string           `json:"receipt_title"`
	SignatureName    string           `json:"signature_name"`
	SugarcaneEntries []SugarcaneEntry `json:"sugarcane_entries" binding:"dive"`
	MolassesEntries  []MolassesEntry  `json:"molasses_entries" binding:"dive"`
}

type ComputationResponse struct {
	ID               string           `json:"id"`
	ReceiptNumber    string           `json:"receipt_number"`
	ReceiptTitle     string           `json:"receipt_title"`
	SignatureName    string           `json:"signature_name"`
	SugarcaneEntries []SugarcaneEntry `json:"sugarcane_entries"`
	MolassesEntries  []MolassesEntry  `json:"molasses_entries"`
	TotalSugarcane   float64          `json:"total_sugarcane"`
	TotalMolasses    float64          `json:"total_molasses"`
	GrandTotal       float64          `json:"grand_total"`
	CreatedAt        string           `json:"created_at"`
}

// ReceiptFile is a rendered receipt ready to be served as a download.
type ReceiptFile struct {
	Filename string
	Content  []byte
}
