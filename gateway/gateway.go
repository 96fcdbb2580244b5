// Package gateway is the HTTP front end for the fastjet gRPC service:
// a thin JSON<->proto translation layer, grounded on the teacher's
// ClusterServer/gin routes.
package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
	pb "github.com/thcabral/fastjet/proto"
)

// Server wraps a gRPC client to the runner service.
type Server struct {
	client pb.FastJetServiceClient
}

// NewServer builds a gateway bound to an already-dialled gRPC client.
func NewServer(client pb.FastJetServiceClient) *Server {
	return &Server{client: client}
}

type particleJSON struct {
	Px float64 `json:"px"`
	Py float64 `json:"py"`
	Pz float64 `json:"pz"`
	E  float64 `json:"e"`
}

type reconstructJSON struct {
	Particles        []particleJSON `json:"particles"`
	Algorithm        string         `json:"algorithm"`
	P                *float64       `json:"p"`
	R                *float64       `json:"r"`
	CheckConsistency bool           `json:"checkConsistency"`
}

func toWireParticles(in []particleJSON) []*pb.ParticleMessage {
	out := make([]*pb.ParticleMessage, len(in))
	for i, p := range in {
		out[i] = &pb.ParticleMessage{Px: p.Px, Py: p.Py, Pz: p.Pz, E: p.E}
	}
	return out
}

// Routes registers every endpoint onto r.
func (s *Server) Routes(r *gin.Engine) {
	r.Use(corsMiddleware)
	r.POST("/api/reconstruct", s.handleReconstruct)
	r.POST("/api/summary", s.handleSummary)
}

func corsMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type")
	if c.Request.Method == "OPTIONS" {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}

func (s *Server) handleReconstruct(c *gin.Context) {
	var body reconstructJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if len(body.Particles) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "particles must not be empty"})
		return
	}

	req := &pb.ReconstructRequest{
		Particles:        toWireParticles(body.Particles),
		Algorithm:        body.Algorithm,
		CheckConsistency: body.CheckConsistency,
	}
	if body.P != nil {
		req.HasP, req.P = true, *body.P
	}
	if body.R != nil {
		req.HasR, req.R = true, *body.R
	}

	resp, err := s.client.Reconstruct(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSummary(c *gin.Context) {
	var body reconstructJSON
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if len(body.Particles) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "particles must not be empty"})
		return
	}

	req := &pb.SummaryRequest{
		Particles: toWireParticles(body.Particles),
		Algorithm: body.Algorithm,
	}
	if body.P != nil {
		req.HasP, req.P = true, *body.P
	}
	if body.R != nil {
		req.HasR, req.R = true, *body.R
	}

	resp, err := s.client.Summarize(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
