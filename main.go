package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"inkwell/app/config"
	"inkwell/app/logging"
	"inkwell/app/services"
	"inkwell/service"
)

const cliVersion = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
}

func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "inkwell",
		Short:        "A small blog engine",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "inkwell.toml", "path to the TOML config file")

	root.AddCommand(
		newServeCmd(opts),
		newDemoCmd(),
		newVersionCmd(),
		newConfigCmd(opts),
		newDBCmd(opts),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inkwell version %s\n", cliVersion)
		},
	}
}

func newServeCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the blog web service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			log, closeLog, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			defer closeLog()

			svc, closeStore, err := service.NewBlogService(cfg, log)
			if err != nil {
				return err
			}
			defer closeStore()

			ln, err := net.Listen("tcp", cfg.Server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", cfg.Server.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return service.RunAppServer(ctx, ln, svc, log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides [server] addr")
	return cmd
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a sample blog in memory and print its renderings",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := service.OpenStore(config.StorageConfig{Type: "memory"})
			if err != nil {
				return err
			}
			defer store.Close()
			return service.RunDemo(services.NewBlogService(store), cmd.OutOrStdout())
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(opts.configPath, config.Default()); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", opts.configPath)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return config.Write(cmd.OutOrStdout(), cfg)
		},
	})
	return cmd
}

func newDBCmd(opts *options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Maintain the blog database",
	}
	cmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "answer yes to every prompt")

	console := func(cmd *cobra.Command) service.Console {
		return service.Console{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Yes: yes}
	}
	storage := func() (config.StorageConfig, error) {
		cfg, err := opts.load()
		if err != nil {
			return config.StorageConfig{}, err
		}
		return cfg.Storage, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Initialize a new empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := storage()
			if err != nil {
				return err
			}
			return service.InitDB(st, console(cmd))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Delete the blog database",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := storage()
			if err != nil {
				return err
			}
			return service.CleanDB(st, console(cmd))
		},
	})

	var backupDir string
	backup := &cobra.Command{
		Use:   "backup",
		Short: "Create a backup of the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := storage()
			if err != nil {
				return err
			}
			_, err = service.BackupDB(st, backupDir, console(cmd))
			return err
		},
	}
	backup.Flags().StringVar(&backupDir, "dir", filepath.Join("data", "backups"), "directory for backup files")
	cmd.AddCommand(backup)

	cmd.AddCommand(&cobra.Command{
		Use:   "restore <file>",
		Short: "Restore the database from a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := storage()
			if err != nil {
				return err
			}
			return service.RestoreDB(st, args[0], console(cmd))
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Count the records in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := storage()
			if err != nil {
				return err
			}
			store, err := service.OpenStore(st)
			if err != nil {
				return err
			}
			defer store.Close()

			counts, err := service.Stats(store)
			if err != nil {
				return err
			}
			for _, kind := range []string{"users", "blogs", "posts", "comments"} {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %d\n", kind+":", counts[kind])
			}
			return nil
		},
	})
	return cmd
}
