package handler

import (
	"net/http"

	"address-datagen/internal/label"
	"address-datagen/internal/vocab"

	"github.com/gin-gonic/gin"
)

// EncodeResponse is the body of GET /encode.
type EncodeResponse struct {
	Text      string  `json:"text"`
	Length    int     `json:"length"`
	Codes     []int64 `json:"codes"`
	VocabSize int     `json:"vocab_size"`
}

// LabelResponse describes one label column.
type LabelResponse struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// Encode godoc
//
//	@Summary		Encode text
//	@Description	Map every character of q to its vocabulary code
//	@Tags			vocabulary
//	@Produce		json
//	@Param			q	query		string	true	"Text to encode"
//	@Success		200	{object}	EncodeResponse
//	@Failure		400	{object}	map[string]string
//	@Router			/encode [get]
func Encode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	n, codes := vocab.Encode(query)
	c.JSON(http.StatusOK, EncodeResponse{Text: query, Length: n, Codes: codes, VocabSize: vocab.Size()})
}

// Labels godoc
//
//	@Summary		List labels
//	@Description	List the label columns in matrix order, blank first. With name, only that label is returned.
//	@Tags			vocabulary
//	@Produce		json
//	@Param			name	query		string	false	"Label name, e.g. street_name"
//	@Success		200		{array}		LabelResponse
//	@Failure		404		{object}	map[string]string
//	@Router			/labels [get]
func Labels(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		f, err := label.ParseField(name)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, []LabelResponse{{Index: int(f), Name: f.String()}})
		return
	}

	out := make([]LabelResponse, 0, label.NumLabels)
	for i := 0; i < label.NumLabels; i++ {
		out = append(out, LabelResponse{Index: i, Name: label.Field(i).String()})
	}
	c.JSON(http.StatusOK, out)
}
