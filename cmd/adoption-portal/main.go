package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/klwxsrx/adoption-portal/internal/pkg/cmd"
	"github.com/klwxsrx/adoption-portal/internal/portal"
	pkgcmd "github.com/klwxsrx/adoption-portal/pkg/cmd"
	"github.com/klwxsrx/adoption-portal/pkg/env"
	pkghttp "github.com/klwxsrx/adoption-portal/pkg/http"
)

func main() {
	config, envFile, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if err = env.Load(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx, config)
	defer infra.Close(ctx)

	container := portal.NewDependencyContainer(
		infra.CredentialStore,
		infra.Clock,
		infra.Logger,
	)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}

func parseFlags(args []string) (config cmd.Config, envFile string, err error) {
	flagSet := pflag.NewFlagSet("adoption-portal", pflag.ContinueOnError)
	flagSet.StringVar(&config.ListenAddress, "listen", pkghttp.DefaultServerAddress, "address the portal listens on")
	flagSet.StringVar(&envFile, "env-file", ".env", "dotenv file to load; variables already set are kept")
	flagSet.StringVar(&config.CredentialStore, "credential-store", "",
		"token storage: memory, file, redis or sql (default: CREDENTIAL_STORE or file)")
	flagSet.StringVar(&config.CredentialFile, "credential-file", "",
		"token file of the file storage (default: CREDENTIAL_FILE or the user config directory)")

	err = flagSet.Parse(args)
	return config, envFile, err
}
