package models

// Sample is a generated training address. Labels holds one label index per character of Text
// and Codes the vocabulary code of each character.
type Sample struct {
	Index  int     `json:"index"`
	Text   string  `json:"text"`
	Labels []int   `json:"labels"`
	Codes  []int64 `json:"codes"`
}
