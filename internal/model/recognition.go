package model

// Box is a rectangle in image coordinates.
type Box struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// RecognizedBlock is one positioned block of text from the OCR engine.
// Positional metadata is carried through for storage but plays no part in
// categorization.
type RecognizedBlock struct {
	Text        string  `json:"text"`
	Confidence  float64 `json:"confidence"`
	BoundingBox Box     `json:"bounding_box"`
	Baseline    Box     `json:"baseline"`
}

// RecognizedText is the full OCR result for one screenshot.
// Confidence is the engine's whole-document score on a 0-100 scale.
type RecognizedText struct {
	Text       string            `json:"text"`
	Confidence float64           `json:"confidence"`
	Blocks     []RecognizedBlock `json:"blocks,omitempty"`
}
