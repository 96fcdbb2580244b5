package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thcabral/fastjet/gateway"
	"github.com/thcabral/fastjet/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	gatewayPort       int
	gatewayRunnerAddr string
)

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "run the HTTP gateway in front of a FastJetService runner",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		conn, err := grpc.NewClient(gatewayRunnerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("dialing runner at %s: %w", gatewayRunnerAddr, err)
		}
		defer conn.Close()

		client := proto.NewFastJetServiceClient(conn)
		srv := gateway.NewServer(client)

		r := gin.Default()
		srv.Routes(r)

		log.Printf("HTTP gateway listening on :%d, runner %s\n", gatewayPort, gatewayRunnerAddr)
		return r.Run(fmt.Sprintf(":%d", gatewayPort))
	},
}

func init() {
	gatewayCmd.Flags().IntVar(&gatewayPort, "port", 8080, "HTTP gateway port")
	gatewayCmd.Flags().StringVar(&gatewayRunnerAddr, "runner-addr", "localhost:50051", "FastJetService gRPC address")
	rootCmd.AddCommand(gatewayCmd)
}
