// Package runner implements the gRPC FastJetService: a stateless
// wrapper around jetcluster that runs one reconstruction per RPC.
//
// Unlike the teacher's ClusterRunner, this server keeps no in-memory
// cache of completed results across calls — see DESIGN.md's "Dropped
// teacher pieces" for why: caching a ClusterSequence across RPCs would
// be the "persistence of the cluster sequence" spec.md rules out.
package runner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thcabral/fastjet/jetcluster"
	"github.com/thcabral/fastjet/jetcluster/report"
	pb "github.com/thcabral/fastjet/proto"
)

// Server implements pb.FastJetServiceServer.
type Server struct {
	pb.UnimplementedFastJetServiceServer
}

// NewServer builds a Server. There is no setup to do: every RPC is
// self-contained.
func NewServer() *Server {
	return &Server{}
}

func (s *Server) Reconstruct(ctx context.Context, req *pb.ReconstructRequest) (*pb.ReconstructResponse, error) {
	requestID := uuid.New().String()[:8]

	cs, err := runRequest(req.Algorithm, req.Particles, req.HasP, req.P, req.HasR, req.R, req.CheckConsistency)
	if err != nil {
		return nil, fmt.Errorf("request %s: %v", requestID, err)
	}

	jets := cs.Jets()
	pbJets := make([]*pb.JetMessage, len(jets))
	for i, j := range jets {
		pbJets[i] = &pb.JetMessage{
			Px: j.Px(), Py: j.Py(), Pz: j.Pz(), E: j.E(),
			ClusterHistIndex: int32(j.ClusterHistIndex()),
		}
	}

	steps := cs.History()
	pbSteps := make([]*pb.HistoryStepMessage, len(steps))
	for i, h := range steps {
		pbSteps[i] = &pb.HistoryStepMessage{
			Parent1: int32(h.Parent1), Parent2: int32(h.Parent2), Child: int32(h.Child), Dij: h.Dij,
		}
	}

	return &pb.ReconstructResponse{
		Algorithm: cs.Algorithm.String(),
		Strategy:  cs.Strategy.String(),
		P:         cs.P,
		R:         cs.R,
		Jets:      pbJets,
		History:   pbSteps,
		Qtot:      cs.Qtot(),
	}, nil
}

func (s *Server) Summarize(ctx context.Context, req *pb.SummaryRequest) (*pb.SummaryResponse, error) {
	cs, err := runRequest(req.Algorithm, req.Particles, req.HasP, req.P, req.HasR, req.R, false)
	if err != nil {
		return nil, err
	}
	summary := report.Calculate(cs)
	return &pb.SummaryResponse{
		Algorithm:    summary.Algorithm,
		Strategy:     summary.Strategy,
		P:            summary.P,
		R:            summary.R,
		NumInputs:    int32(summary.NumInputs),
		NumMerges:    int32(summary.NumMerges),
		NumBeamSteps: int32(summary.NumBeamSteps),
		NumFinalJets: int32(summary.NumFinalJets),
		Qtot:         summary.Qtot,
		DijMin:       summary.Dij.Min,
		DijMax:       summary.Dij.Max,
		DijAverage:   summary.Dij.Average,
	}, nil
}

// runRequest converts the wire request into a jetcluster call, picking
// TiledReconstruct or EEReconstruct by algorithm family.
func runRequest(algName string, particles []*pb.ParticleMessage, hasP bool, p float64, hasR bool, r float64, check bool) (*jetcluster.ClusterSequence, error) {
	alg, err := parseAlgorithm(algName)
	if err != nil {
		return nil, err
	}

	jets := particlesFromWire(particles)

	var opts []jetcluster.Option[jetcluster.Jet]
	if hasP {
		opts = append(opts, jetcluster.WithP[jetcluster.Jet](p))
	}
	if hasR {
		opts = append(opts, jetcluster.WithR[jetcluster.Jet](r))
	}
	if check {
		opts = append(opts, jetcluster.WithConsistencyCheck[jetcluster.Jet]())
	}

	switch alg {
	case jetcluster.Kt, jetcluster.AntiKt, jetcluster.CA, jetcluster.GenKt:
		return jetcluster.TiledReconstruct(jets, alg, opts...)
	default:
		return jetcluster.EEReconstruct(jets, alg, opts...)
	}
}
