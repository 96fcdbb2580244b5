package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "fastjetctl",
	Short: "run and serve sequential jet clustering",
	Long: `
fastjetctl runs sequential generalised-kT jet clustering over a
particle fixture, or serves the reconstruction engine over gRPC and
HTTP.
`,
}

var version = "dev"

func execute(v string) {
	version = v

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
