package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/dshills/phpfix/internal/editor"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and fix PHP files as they are saved",
	Long: `watch observes a directory tree and routes every PHP file write
through the format-on-save hook. Enable on_save in the settings file,
or nothing will happen on save.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	application, err := newApplication(cmd)
	if err != nil {
		return err
	}
	defer application.Shutdown()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the whole tree; fsnotify does not recurse on its own.
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	log := application.Logger().WithComponent("watch")
	log.Info("watching %s", dir)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				// Newly created directories join the watch.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = fsw.Add(event.Name)
					continue
				}
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if editor.DetectLanguageID(event.Name) != editor.LanguagePHP {
				continue
			}

			content, err := os.ReadFile(event.Name)
			if err != nil {
				log.Debug("skip %s: %v", event.Name, err)
				continue
			}
			application.DocumentSaved(editor.NewDocument(event.Name, content))

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Error("watch error: %v", err)

		case <-signals:
			log.Info("stopping")
			return nil

		case <-cmd.Context().Done():
			return nil
		}
	}
}
