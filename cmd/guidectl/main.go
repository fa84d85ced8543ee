// Command guidectl is the operator tool of the city guide server: it applies
// migrations, seeds the curated events and helps with password hashes and
// access tokens.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-city-guide/internal/config"
	"github.com/MKhiriev/go-city-guide/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	root := newRootCmd(buildInfo())
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	orDefault := func(v string) string {
		if v == "" {
			return config.DefaultVersion
		}
		return v
	}
	return models.NewAppBuildInfo(orDefault(buildVersion), orDefault(buildDate), orDefault(buildCommit))
}
