package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/buildtrack/epc-console/client"
	"github.com/buildtrack/epc-console/config"
	console_errors "github.com/buildtrack/epc-console/errors"
	logger "github.com/buildtrack/epc-console/logging"
	"github.com/buildtrack/epc-console/model"
	"github.com/buildtrack/epc-console/notify"
	"github.com/buildtrack/epc-console/report"
	"github.com/buildtrack/epc-console/session"
	"github.com/buildtrack/epc-console/store"
	"github.com/buildtrack/epc-console/transport"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// The bearer token is read once at startup; an empty value means the
	// calls go out unauthenticated and the server decides.
	sess := session.New(os.Getenv(config.GetString("session.tokenEnv")))

	api, err := transport.New(config.GetString("api.baseURL"), sess)
	if err != nil {
		logger.Fatal("Failed to initialize transport", zap.Error(err))
	}

	st := store.New()
	clients := client.New(api, st)

	notifier := notify.NewNotifier()
	notifier.Subscribe(func(n notify.Notification) {
		fmt.Printf("[%s] %s\n", n.Level, n.Message)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(ctx, clients, os.Args[1], os.Args[2:]); err != nil {
		notifier.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, clients *client.Clients, command string, args []string) error {
	switch command {
	case "users":
		users, err := fetchAll(ctx, func(ctx context.Context, params transport.ListParams) ([]model.User, error) {
			return clients.Users.List(ctx, params)
		})
		if err != nil {
			return err
		}
		for _, u := range users {
			active := "inactive"
			if u.IsActive {
				active = "active"
			}
			fmt.Printf("%6d  %-24s %-32s %s\n", u.ID, u.FullName, u.Email, active)
		}
		return nil

	case "departments":
		departments, err := fetchAll(ctx, func(ctx context.Context, params transport.ListParams) ([]model.Department, error) {
			return clients.Departments.List(ctx, params)
		})
		if err != nil {
			return err
		}
		for _, d := range departments {
			fmt.Printf("%6d  %s\n", d.ID, d.DepartmentName)
		}
		return nil

	case "projects":
		projects, err := clients.Projects.ListMain(ctx)
		if err != nil {
			return err
		}
		for _, p := range projects {
			fmt.Printf("%6d  %-32s %s\n", p.ID, p.Name, p.Status)
		}
		return nil

	case "drawings":
		projectID, err := parseID(args, "drawings <project-id>")
		if err != nil {
			return err
		}
		drawings, err := fetchAll(ctx, func(ctx context.Context, params transport.ListParams) ([]model.Drawing, error) {
			return clients.Drawings.ListByProject(ctx, projectID, params)
		})
		if err != nil {
			return err
		}
		for _, d := range drawings {
			fmt.Printf("%6d  %-16s rev %-6s %-12s %s\n", d.ID, d.DrawingNumber, d.RevisionNumber, d.ApprovalStatus, d.Title)
		}
		return nil

	case "report":
		projectID, err := parseID(args, "report <project-id>")
		if err != nil {
			return err
		}
		project, err := clients.Projects.Get(ctx, projectID)
		if err != nil {
			return err
		}
		inspections, err := fetchAll(ctx, func(ctx context.Context, params transport.ListParams) ([]model.Inspection, error) {
			return clients.Inspections.ListByProject(ctx, projectID, params)
		})
		if err != nil {
			return err
		}
		workbook, filename, err := report.BuildWorkbook(*project, inspections, time.Now())
		if err != nil {
			return err
		}
		path := filepath.Join(config.GetString("export.outputDir"), filename)
		if err := workbook.SaveAs(path); err != nil {
			return fmt.Errorf("failed to save workbook: %w", err)
		}
		fmt.Printf("Report written to %s\n", path)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// fetchAll walks a paginated list operation until a short page, using the
// configured page size.
func fetchAll[T any](ctx context.Context, fetch func(context.Context, transport.ListParams) ([]T, error)) ([]T, error) {
	pageSize := config.GetInt("list.pageSize")
	var all []T
	for page := 1; ; page++ {
		items, err := fetch(ctx, transport.ListParams{Page: page, PageSize: pageSize})
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < pageSize {
			return all, nil
		}
	}
}

func parseID(args []string, usageHint string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("usage: epc-console %s: %w", usageHint, console_errors.ErrMissingProject)
	}
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: %w", args[0], console_errors.ErrMissingProject)
	}
	return id, nil
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: epc-console <command>

commands:
  users                  list users
  departments            list departments
  projects               list main projects
  drawings <project-id>  list drawings for a project
  report <project-id>    export the quality report workbook`)
}
