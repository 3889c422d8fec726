package service

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fatih/color"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/repositories/migrations"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
)

// Console carries the streams the db commands talk to. With Yes set every
// confirmation prompt is answered yes.
type Console struct {
	In  io.Reader
	Out io.Writer
	Yes bool
}

func (c Console) confirm(question string) bool {
	if c.Yes {
		return true
	}
	warnColor.Fprintf(c.Out, "%s [y/N] ", question)
	line, _ := bufio.NewReader(c.In).ReadString('\n')
	answer := strings.TrimSpace(line)
	return answer == "y" || answer == "Y"
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func requirePersistent(cfg config.StorageConfig) error {
	if cfg.Type == "memory" {
		return fmt.Errorf("storage type memory has no database on disk")
	}
	return nil
}

// InitDB creates an empty database, running migrations for SQLite.
func InitDB(cfg config.StorageConfig, con Console) error {
	if err := requirePersistent(cfg); err != nil {
		return err
	}
	if exists(cfg.Path) {
		fmt.Fprintln(con.Out, "Database already exists. Use 'clean' first if you want to reinitialize.")
		return nil
	}
	if cfg.Type == "badger" {
		if err := os.MkdirAll(cfg.Path, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := OpenStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := store.Close(); err != nil {
		return err
	}
	okColor.Fprintln(con.Out, "Database initialized successfully")
	return nil
}

// CleanDB removes the database after confirmation.
func CleanDB(cfg config.StorageConfig, con Console) error {
	if err := requirePersistent(cfg); err != nil {
		return err
	}
	if !exists(cfg.Path) {
		fmt.Fprintln(con.Out, "Database is already clean (does not exist)")
		return nil
	}
	if !con.confirm("Are you sure you want to clean the database? This cannot be undone.") {
		fmt.Fprintln(con.Out, "Operation cancelled")
		return nil
	}
	if err := os.RemoveAll(cfg.Path); err != nil {
		return fmt.Errorf("failed to clean database: %w", err)
	}
	okColor.Fprintln(con.Out, "Database cleaned successfully")
	return nil
}

// BackupDB writes a snapshot of the database into dir and returns its path.
func BackupDB(cfg config.StorageConfig, dir string, con Console) (string, error) {
	if err := requirePersistent(cfg); err != nil {
		return "", err
	}
	if !exists(cfg.Path) {
		return "", fmt.Errorf("no database exists to backup at %s", cfg.Path)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	backupFile := filepath.Join(dir, fmt.Sprintf("backup_%s_%d.db", cfg.Type, time.Now().UnixNano()))
	var err error
	if cfg.Type == "badger" {
		err = backupBadger(cfg.Path, backupFile)
	} else {
		err = backupSQLite(cfg.Path, backupFile)
	}
	if err != nil {
		return "", err
	}
	okColor.Fprintf(con.Out, "Database backed up successfully to %s\n", backupFile)
	return backupFile, nil
}

func backupBadger(dbPath, backupFile string) error {
	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	f, err := os.Create(backupFile)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	if _, err := db.Backup(f, 0); err != nil {
		return fmt.Errorf("failed to backup database: %w", err)
	}
	return nil
}

func backupSQLite(dbPath, backupFile string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("VACUUM INTO ?", backupFile); err != nil {
		return fmt.Errorf("failed to backup database: %w", err)
	}
	return nil
}

// RestoreDB replaces the database with the contents of backupFile.
func RestoreDB(cfg config.StorageConfig, backupFile string, con Console) error {
	if err := requirePersistent(cfg); err != nil {
		return err
	}
	fi, err := os.Stat(backupFile)
	if err != nil {
		return fmt.Errorf("backup file does not exist: %s", backupFile)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("backup file is empty: %s", backupFile)
	}

	if exists(cfg.Path) {
		if !con.confirm("Existing database found. Do you want to replace it?") {
			fmt.Fprintln(con.Out, "Operation cancelled")
			return nil
		}
		if err := os.RemoveAll(cfg.Path); err != nil {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	if cfg.Type == "badger" {
		err = restoreBadger(cfg.Path, backupFile)
	} else {
		err = restoreSQLite(cfg.Path, backupFile)
	}
	if err != nil {
		return err
	}
	okColor.Fprintln(con.Out, "Database restored successfully")
	return nil
}

func restoreBadger(dbPath, backupFile string) (err error) {
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := badger.Open(badger.DefaultOptions(dbPath).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	f, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic occurred during restore: %v", r)
		}
	}()
	if err := db.Load(f, 4); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}
	return nil
}

func restoreSQLite(dbPath, backupFile string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	src, err := os.Open(backupFile)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dbPath)
	if err != nil {
		return fmt.Errorf("failed to create database file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("failed to restore database: %w", err)
	}
	if err := dst.Close(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open restored database: %w", err)
	}
	defer db.Close()
	version, _, err := migrations.Version(db)
	if err != nil {
		return fmt.Errorf("restored file is not an inkwell database: %w", err)
	}
	if version == 0 {
		return fmt.Errorf("restored file is not an inkwell database: no schema version")
	}
	return nil
}

// Stats reports how many records of each kind the store holds.
func Stats(store *repositories.Store) (map[string]int, error) {
	counts := make(map[string]int, 4)
	users, err := store.Users.List()
	if err != nil {
		return nil, err
	}
	counts["users"] = len(users)
	blogs, err := store.Blogs.List()
	if err != nil {
		return nil, err
	}
	counts["blogs"] = len(blogs)
	posts, err := store.Posts.List()
	if err != nil {
		return nil, err
	}
	counts["posts"] = len(posts)
	comments, err := store.Comments.List()
	if err != nil {
		return nil, err
	}
	counts["comments"] = len(comments)
	return counts, nil
}
