package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/httpclient"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/httpsource"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/jsonsource"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/logger"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/reportstore"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/workspacefinder"
	"github.com/pingfanfan/FundingCall-UK/internal/ports"
)

// sourceFlags are shared by every command that reads data.
type sourceFlags struct {
	workspace string
	data      string
	url       string
	debug     bool
}

func bindSourceFlags(c *cobra.Command, sf *sourceFlags) {
	c.Flags().StringVarP(&sf.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&sf.data, "data", "", "Data file to read instead of the configured sources")
	c.Flags().StringVar(&sf.url, "url", "", "URL of a data file to fetch instead of the configured sources")
	c.Flags().BoolVar(&sf.debug, "debug", false, "Enable verbose logging to .fundingcall/logs/fundingcall.log")
	c.MarkFlagsMutuallyExclusive("data", "url")
}

type workspaceCtx struct {
	root string
	cfg  domain.Config

	source ports.RecordSource
	store  ports.ReportStore
}

// loadWorkspace resolves the workspace and builds the data source. With --data or --url no
// workspace is required; defaults apply and the working directory stands in for the root.
func loadWorkspace(sf sourceFlags) (*workspaceCtx, error) {
	override := strings.TrimSpace(sf.data) != "" || strings.TrimSpace(sf.url) != ""

	root, err := resolveWorkspaceRoot(sf.workspace)
	cfg := domain.DefaultConfig()
	switch {
	case err == nil:
		cfg, err = workspacefinder.LoadConfig(root)
		if err != nil && !(override && domain.IsKind(err, domain.KindNotFound)) {
			return nil, err
		}
		if err != nil {
			cfg = domain.DefaultConfig()
			cfg.Paths.ReportsDir = workspacefinder.Resolve(root, cfg.Paths.ReportsDir)
		}
	case override:
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("get working directory: %w", wdErr)
		}
		root = wd
		cfg.Paths.ReportsDir = workspacefinder.Resolve(root, cfg.Paths.ReportsDir)
	default:
		return nil, err
	}

	switch {
	case strings.TrimSpace(sf.data) != "":
		abs, absErr := filepath.Abs(sf.data)
		if absErr != nil {
			return nil, fmt.Errorf("invalid data path: %w", absErr)
		}
		cfg.Data.Sources = []domain.SourceConfig{{Name: filepath.Base(abs), File: abs, RecordsPath: domain.DefaultRecordsPath}}
	case strings.TrimSpace(sf.url) != "":
		cfg.Data.Sources = []domain.SourceConfig{{Name: sf.url, URL: sf.url, RecordsPath: domain.DefaultRecordsPath}}
	}

	source, err := buildSource(cfg)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:   root,
		cfg:    cfg,
		source: source,
		store:  reportstore.NewJSONStore(cfg.Paths.ReportsDir, reportstore.WithIndex(true)),
	}, nil
}

func buildSource(cfg domain.Config) (ports.RecordSource, error) {
	if len(cfg.Data.Sources) == 0 {
		return nil, &domain.OpError{
			Op:   "cli.source",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("no data sources configured"),
		}
	}

	var exec *httpclient.Executor
	sources := make([]ports.RecordSource, 0, len(cfg.Data.Sources))
	for _, s := range cfg.Data.Sources {
		if s.URL != "" {
			if exec == nil {
				exec = httpclient.NewExecutor(httpclient.WithTimeout(cfg.Data.Timeout))
			}
			sources = append(sources, httpsource.New(s.Name, s.URL, s.RecordsPath, httpsource.WithExecutor(exec)))
			continue
		}
		sources = append(sources, jsonsource.NewFileSource(s.Name, s.File, s.RecordsPath))
	}

	if len(sources) == 1 {
		return sources[0], nil
	}
	return jsonsource.NewMultiSource(sources...), nil
}

// watchPaths lists local data files; HTTP sources cannot be watched.
func (ws *workspaceCtx) watchPaths() []string {
	var out []string
	for _, s := range ws.cfg.Data.Sources {
		if s.File != "" {
			out = append(out, s.File)
		}
	}
	return out
}

func setupLogger(ws *workspaceCtx, debug bool) func() {
	cleanup, _ := logger.Setup(logger.Config{Root: ws.root, Debug: debug, App: "fundingcall"})
	if cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `fundingcall init` or pass --data): %w", wd, err)
	}
	return root, nil
}
