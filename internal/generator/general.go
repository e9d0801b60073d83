package generator

import (
	"math/rand/v2"

	"address-datagen/internal/label"
	"address-datagen/internal/models"
)

// GeneralParts records which parts of the postal record appear, e.g. "Essex England 6XB IOR".
type GeneralParts struct {
	County   string
	State    string
	Postcode string
	Order    int // index into permutations3 over [county, state, postcode]
}

// DrawGeneral decides which parts of row are written. Every part is optional; when all are
// skipped the rendered fragment is empty.
func (g *Generator) DrawGeneral(rng *rand.Rand, row models.PostalRecord) *GeneralParts {
	p := &GeneralParts{}
	if !skip(rng, g.cfg.CountyProb) {
		p.County = row.County
	}
	if !skip(rng, g.cfg.StateProb) {
		p.State = row.State
	}
	if !skip(rng, g.cfg.PostcodeProb) {
		p.Postcode = row.Postcode
	}
	p.Order = rng.IntN(len(permutations3))
	return p
}

// RenderGeneral labels and joins the parts.
func (g *Generator) RenderGeneral(rng *rand.Rand, p *GeneralParts) (label.Fragment, error) {
	slots := []label.Fragment{
		g.value(rng, p.County, label.County),
		g.value(rng, p.State, label.State),
		g.value(rng, p.Postcode, label.Postcode),
	}
	return g.arrange(slots, permutations3[p.Order])
}

// General draws and renders the county, state and postcode of row.
func (g *Generator) General(rng *rand.Rand, row models.PostalRecord) (label.Fragment, error) {
	return g.RenderGeneral(rng, g.DrawGeneral(rng, row))
}
