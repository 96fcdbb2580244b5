package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thcabral/fastjet/proto"
	"github.com/thcabral/fastjet/runner"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the FastJetService gRPC server",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", servePort))
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}

		s := grpc.NewServer()
		proto.RegisterFastJetServiceServer(s, runner.NewServer())
		reflection.Register(s)

		go func() {
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			<-quit
			log.Println("shutting down gRPC server...")
			s.GracefulStop()
		}()

		log.Printf("gRPC server listening on :%d\n", servePort)
		return s.Serve(lis)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 50051, "gRPC server port")
	rootCmd.AddCommand(serveCmd)
}
