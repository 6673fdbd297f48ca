package main

// ======================= CONFIG =======================

const (
	defaultAddr    = ":8080"
	defaultOutName = "merged" // fallback output basename
	maxUploadMB    = 200      // safety cap for one merge request
)

// ======================= DATA TYPES ===================

// UploadedItem is one input document: the filename the user supplied plus
// the raw bytes. The merge pipeline never looks past these two fields.
type UploadedItem struct {
	Name string
	Data []byte
}

type OrderRequest struct {
	Files []string `json:"files"` // filenames in upload order
}

type OrderResponse struct {
	Order []string `json:"order"` // resolved merge order
}
