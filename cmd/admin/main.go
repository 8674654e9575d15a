// admin drives the configuration panel from a terminal.
//
// Usage:
//
//	go run ./cmd/admin -api http://localhost:8081 -wallet ABC123 connect
//	go run ./cmd/admin -wallet ABC123 -provider helius -rpc-key KEY test-rpc
//	go run ./cmd/admin -wallet ABC123 -railway-key KEY -railway-project PID test-railway
//	go run ./cmd/admin -wallet ABC123 -provider quicknode -rpc-url wss://... \
//	    -railway-key KEY -railway-project PID save
//
// With -local the credential probes run in this process instead of through the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/creasty/defaults"
	"go.uber.org/zap"

	"github.com/chainsafe/deploy-admin/pkg/client"
	"github.com/chainsafe/deploy-admin/pkg/config"
	"github.com/chainsafe/deploy-admin/pkg/credential"
	"github.com/chainsafe/deploy-admin/pkg/settings"
	"github.com/chainsafe/deploy-admin/pkg/userconfig"
)

var (
	apiURL         = flag.String("api", "http://localhost:8081", "Base URL of the deploy admin API")
	walletAddress  = flag.String("wallet", "", "Wallet address to act for")
	provider       = flag.String("provider", "", "RPC provider (helius or quicknode)")
	rpcKey         = flag.String("rpc-key", "", "RPC provider API key")
	rpcURL         = flag.String("rpc-url", "", "QuickNode websocket URL")
	railwayKey     = flag.String("railway-key", "", "Railway API key")
	railwayProject = flag.String("railway-project", "", "Railway project ID")
	local          = flag.Bool("local", false, "Run credential checks locally instead of through the API")
	configPath     = flag.String("config", "", "Config file for local credential checks (defaults apply when empty)")
	verbose        = flag.Bool("v", false, "Verbose logging")
)

const usage = `Commands:
  connect       connect the wallet and print the stored configuration
  test-rpc      test the RPC provider credentials
  test-railway  test the Railway credentials
  save          test both groups and save the configuration
`

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command>\n\n%s\nFlags:\n", os.Args[0], usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *walletAddress == "" {
		fmt.Fprintln(os.Stderr, "Error: -wallet is required")
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flag.Arg(0), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, logger *zap.Logger) error {
	api := client.New(*apiURL, client.DefaultTimeout)

	checker, err := newChecker(api)
	if err != nil {
		return err
	}

	panel := settings.NewPanel(api, checker, logger)
	if err = panel.ConnectWallet(ctx, *walletAddress); err != nil {
		return err
	}
	if err = applyFlags(panel); err != nil {
		return err
	}

	switch command {
	case "connect":
	case "test-rpc":
		err = panel.TestRPC(ctx)
	case "test-railway":
		err = panel.TestRailway(ctx)
	case "save":
		err = testAndSave(ctx, panel)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}

	printState(panel.State())
	return err
}

func newChecker(api *client.Client) (settings.Checker, error) {
	if !*local {
		return api, nil
	}

	if *configPath != "" {
		cfg, err := config.LoadAPIServer(*configPath)
		if err != nil {
			return nil, err
		}
		return credential.NewLocal(&cfg.Credentials), nil
	}

	var creds config.CredentialsConfig
	if err := defaults.Set(&creds); err != nil {
		return nil, fmt.Errorf("failed to apply credential defaults: %w", err)
	}
	return credential.NewLocal(&creds), nil
}

// applyFlags overrides the loaded fields with the ones given on the command line
func applyFlags(panel *settings.Panel) error {
	if *provider != "" {
		p, err := userconfig.ParseProvider(*provider)
		if err != nil {
			return err
		}
		panel.SetProvider(p)
	}
	if *rpcKey != "" {
		panel.SetRPCAPIKey(*rpcKey)
	}
	if *rpcURL != "" {
		panel.SetRPCURL(*rpcURL)
	}
	if *railwayKey != "" {
		panel.SetRailwayAPIKey(*railwayKey)
	}
	if *railwayProject != "" {
		panel.SetRailwayProjectID(*railwayProject)
	}
	return nil
}

func testAndSave(ctx context.Context, panel *settings.Panel) error {
	st := panel.State()
	if st.RPC.Status != settings.StatusConnected {
		if err := panel.TestRPC(ctx); err != nil {
			return fmt.Errorf("rpc test failed: %w", err)
		}
	}
	if st.Railway.Status != settings.StatusConnected {
		if err := panel.TestRailway(ctx); err != nil {
			return fmt.Errorf("railway test failed: %w", err)
		}
	}
	return panel.Save(ctx)
}

func printState(st settings.State) {
	fmt.Println("======================================================================")
	fmt.Printf("Wallet:   %s\n", st.WalletAddress)
	fmt.Printf("User ID:  %s\n", st.UserID)
	if st.LoadError != "" {
		fmt.Printf("Load:     %s\n", st.LoadError)
	}
	fmt.Println("----------------------------------------------------------------------")
	fmt.Printf("RPC:      %-12s provider=%s key=%s url=%s\n",
		st.RPC.Status, st.RPC.Provider, mask(st.RPC.APIKey), st.RPC.URL)
	if st.RPC.Error != "" {
		fmt.Printf("          %s\n", st.RPC.Error)
	}
	fmt.Printf("Railway:  %-12s project=%s key=%s\n",
		st.Railway.Status, st.Railway.ProjectID, mask(st.Railway.APIKey))
	if st.Railway.Error != "" {
		fmt.Printf("          %s\n", st.Railway.Error)
	}
	fmt.Println("----------------------------------------------------------------------")
	fmt.Printf("Deploy:   %s\n", st.Deploy)
	if st.DeployError != "" {
		fmt.Printf("          %s\n", st.DeployError)
	}
	fmt.Println("======================================================================")
}

func mask(secret string) string {
	switch {
	case secret == "":
		return "<empty>"
	case len(secret) <= 4:
		return "****"
	default:
		return "****" + secret[len(secret)-4:]
	}
}
