// Package preprocess adapts common particle representations into
// jetcluster.Jet, for callers whose input type isn't already a
// four-momentum in (px, py, pz, E) form.
package preprocess

import (
	"math"

	"github.com/thcabral/fastjet/jetcluster"
)

// PxPyPzE is a particle already expressed in Cartesian four-momentum.
type PxPyPzE struct {
	Px, Py, Pz, E float64
}

// FromPxPyPzE is a jetcluster.PreprocessFunc[PxPyPzE]: a direct copy.
func FromPxPyPzE(p PxPyPzE, histIndex int) jetcluster.Jet {
	return jetcluster.NewJet(p.Px, p.Py, p.Pz, p.E, histIndex)
}

// PtEtaPhiM is a particle expressed in collider coordinates: transverse
// momentum, pseudorapidity, azimuth, and mass.
type PtEtaPhiM struct {
	Pt, Eta, Phi, M float64
}

// FromPtEtaPhiM converts collider coordinates to Cartesian
// four-momentum, assigning the given cluster history index.
func FromPtEtaPhiM(p PtEtaPhiM, histIndex int) jetcluster.Jet {
	px := p.Pt * math.Cos(p.Phi)
	py := p.Pt * math.Sin(p.Phi)
	pz := p.Pt * math.Sinh(p.Eta)
	pMag := math.Sqrt(px*px + py*py + pz*pz)
	e := math.Sqrt(pMag*pMag + p.M*p.M)
	return jetcluster.NewJet(px, py, pz, e, histIndex)
}
