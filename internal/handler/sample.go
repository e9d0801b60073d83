package handler

import (
	"context"
	"net/http"
	"strconv"

	"address-datagen/internal/models"
	"address-datagen/internal/service"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultPreviewSize = 10

// SampleHandler handles sample preview requests
type SampleHandler struct {
	service     SampleService
	defaultSeed uint64
}

// SampleService interface for dependency injection
type SampleService interface {
	Preview(ctx context.Context, n int, seed uint64) ([]models.Sample, error)
}

// SamplesResponse is the body of GET /samples.
type SamplesResponse struct {
	Seed    uint64          `json:"seed"`
	Samples []models.Sample `json:"samples"`
}

// NewSampleHandler creates a new sample handler. defaultSeed is used when a request has no seed.
func NewSampleHandler(svc SampleService, defaultSeed uint64) *SampleHandler {
	return &SampleHandler{service: svc, defaultSeed: defaultSeed}
}

// Samples godoc
//
//	@Summary		Preview labelled addresses
//	@Description	Generate n labelled addresses from randomly drawn catalog rows
//	@Tags			samples
//	@Produce		json
//	@Param			n		query		int	false	"Number of samples (1-1000)"	default(10)
//	@Param			seed	query		int	false	"Random seed"
//	@Success		200		{object}	SamplesResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/samples [get]
func (h *SampleHandler) Samples(c *gin.Context) {
	n := defaultPreviewSize
	if nStr := c.Query("n"); nStr != "" {
		v, err := strconv.Atoi(nStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sample count format"})
			return
		}
		n = v
	}

	seed := h.defaultSeed
	if seedStr := c.Query("seed"); seedStr != "" {
		v, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seed format"})
			return
		}
		seed = v
	}

	samples, err := h.service.Preview(c.Request.Context(), n, seed)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidCount.Error()})
			return
		}
		log.Error().Err(err).Int("n", n).Uint64("seed", seed).Msg("preview failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SamplesResponse{Seed: seed, Samples: samples})
}
