package main

import (
	"fmt"
	"os"

	"github.com/lotto-tools/report-center/pkg/runtime/terminal"
	"github.com/lotto-tools/report-center/pkg/services/fetch"
	"github.com/lotto-tools/report-center/pkg/store/dal"
	lambdastore "github.com/lotto-tools/report-center/pkg/store/lambda"
	mongostore "github.com/lotto-tools/report-center/pkg/store/mongo"
	sqlstore "github.com/lotto-tools/report-center/pkg/store/sql"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Factories: fetch.NewFactoryRegistry(map[string]fetch.SourceFactory{
			"mongo":    mongostore.SourceFactory,
			"postgres": sqlstore.SourceFactory,
			"lambda":   lambdastore.SourceFactory,
			"dal":      dal.SourceFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
