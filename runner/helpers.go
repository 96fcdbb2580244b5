package runner

import (
	"fmt"

	"github.com/thcabral/fastjet/jetcluster"
	"github.com/thcabral/fastjet/jetcluster/preprocess"
	pb "github.com/thcabral/fastjet/proto"
)

// parseAlgorithm maps the wire algorithm name to jetcluster.Algorithm.
func parseAlgorithm(name string) (jetcluster.Algorithm, error) {
	switch name {
	case "kt":
		return jetcluster.Kt, nil
	case "antikt":
		return jetcluster.AntiKt, nil
	case "ca":
		return jetcluster.CA, nil
	case "genkt":
		return jetcluster.GenKt, nil
	case "eekt":
		return jetcluster.EEKt, nil
	case "durham":
		return jetcluster.Durham, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q", name)
	}
}

// particlesFromWire converts the wire particle messages into the
// engine's jet type up front, via preprocess.FromPxPyPzE.
func particlesFromWire(particles []*pb.ParticleMessage) []jetcluster.Jet {
	out := make([]jetcluster.Jet, len(particles))
	for i, p := range particles {
		out[i] = preprocess.FromPxPyPzE(preprocess.PxPyPzE{Px: p.Px, Py: p.Py, Pz: p.Pz, E: p.E}, i)
	}
	return out
}
