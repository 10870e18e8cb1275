package fixer

import (
	"strings"
	"testing"

	"github.com/dshills/phpfix/internal/notify"
)

func newClassifierCoordinator() (*Coordinator, *recorder) {
	dispatcher := notify.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(rec.observe)

	co := New(&staticConfig{}, WithNotifier(dispatcher))
	return co, rec
}

func TestScanStderr_LintError(t *testing.T) {
	co, rec := newClassifierCoordinator()

	co.scanStderr(strings.NewReader(
		"Loaded config default.\n" +
			"Files that were not fixed due to errors reported during linting before fixing: /srv/a.php /srv/b.php\n"))

	errs := rec.byLevel(notify.LevelError)
	if len(errs) != 1 {
		t.Fatalf("expected 1 error notification, got %d", len(errs))
	}
	if errs[0].Detail != "/srv/a.php /srv/b.php" {
		t.Errorf("unexpected detail %q", errs[0].Detail)
	}
}

func TestScanStderr_LegacyConfig(t *testing.T) {
	co, rec := newClassifierCoordinator()

	co.scanStderr(strings.NewReader(
		"Configuration file `.php_cs` is outdated, rename to `.php-cs-fixer.php`.\n"))

	info := rec.byLevel(notify.LevelInfo)
	if len(info) != 1 {
		t.Fatalf("expected 1 info notification, got %d", len(info))
	}
}

func TestScanStderr_UnmatchedIsInformationalOnly(t *testing.T) {
	co, rec := newClassifierCoordinator()

	co.scanStderr(strings.NewReader(
		"Loaded config default from \"/ws/.php-cs-fixer.php\".\nUsing cache file \".php-cs-fixer.cache\".\n"))

	if len(rec.all()) != 0 {
		t.Errorf("expected no notifications for diagnostic output, got %+v", rec.all())
	}
}
