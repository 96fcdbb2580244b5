// Package proto holds the wire message types and service interface
// for the fastjet RPC service, in the shape protoc-gen-go and
// protoc-gen-go-grpc would produce from a .proto definition.
package proto

// ParticleMessage is one input four-momentum.
type ParticleMessage struct {
	Px float64 `json:"px"`
	Py float64 `json:"py"`
	Pz float64 `json:"pz"`
	E  float64 `json:"e"`
}

// ReconstructRequest asks the service to run one reconstruction.
type ReconstructRequest struct {
	Particles        []*ParticleMessage `json:"particles"`
	Algorithm        string             `json:"algorithm"`
	HasP             bool               `json:"hasP"`
	P                float64            `json:"p"`
	HasR             bool               `json:"hasR"`
	R                float64            `json:"r"`
	CheckConsistency bool               `json:"checkConsistency"`
}

// JetMessage is one entry from the finished jet store.
type JetMessage struct {
	Px              float64 `json:"px"`
	Py              float64 `json:"py"`
	Pz              float64 `json:"pz"`
	E               float64 `json:"e"`
	ClusterHistIndex int32  `json:"clusterHistIndex"`
}

// HistoryStepMessage is one recorded merge or beam-termination step.
type HistoryStepMessage struct {
	Parent1 int32   `json:"parent1"`
	Parent2 int32   `json:"parent2"`
	Child   int32   `json:"child"`
	Dij     float64 `json:"dij"`
}

// ReconstructResponse carries the finished cluster sequence.
type ReconstructResponse struct {
	Algorithm string                 `json:"algorithm"`
	Strategy  string                 `json:"strategy"`
	P         float64                `json:"p"`
	R         float64                `json:"r"`
	Jets      []*JetMessage          `json:"jets"`
	History   []*HistoryStepMessage  `json:"history"`
	Qtot      float64                `json:"qtot"`
}

// SummaryRequest asks the service for a human-readable digest instead
// of the full jet/history payload.
type SummaryRequest struct {
	Particles []*ParticleMessage `json:"particles"`
	Algorithm string             `json:"algorithm"`
	HasP      bool               `json:"hasP"`
	P         float64            `json:"p"`
	HasR      bool               `json:"hasR"`
	R         float64            `json:"r"`
}

// SummaryResponse carries report.Summary's fields over the wire.
type SummaryResponse struct {
	Algorithm    string  `json:"algorithm"`
	Strategy     string  `json:"strategy"`
	P            float64 `json:"p"`
	R            float64 `json:"r"`
	NumInputs    int32   `json:"numInputs"`
	NumMerges    int32   `json:"numMerges"`
	NumBeamSteps int32   `json:"numBeamSteps"`
	NumFinalJets int32   `json:"numFinalJets"`
	Qtot         float64 `json:"qtot"`
	DijMin       float64 `json:"dijMin"`
	DijMax       float64 `json:"dijMax"`
	DijAverage   float64 `json:"dijAverage"`
}
