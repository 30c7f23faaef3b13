package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chaz8081/moodlog/internal/config"
	"github.com/chaz8081/moodlog/internal/mood"
	"github.com/chaz8081/moodlog/internal/paths"
	"github.com/chaz8081/moodlog/internal/store"
)

var now = time.Now

// logRequest is the validated command input for one invocation.
type logRequest struct {
	Value      float64
	Message    string
	MessageSet bool // -m was passed, possibly with an empty note
	Datetime   string
	DBPath     string
}

// effectiveDBPath picks the database path by precedence: flag, then config
// (which already carries MOODLOG_DBPATH), then the platform default. The bool
// reports whether the default location was used.
func effectiveDBPath(flag string, cfg *config.Config) (string, bool, error) {
	explicit := flag
	if explicit == "" && cfg != nil {
		explicit = cfg.DBPath
	}
	p, err := paths.ResolveDBPath(explicit)
	if err != nil {
		return "", false, err
	}
	return p, explicit == "", nil
}

// recordMood resolves the timestamp and database, appends the entry and prints
// a one-line summary to out. Storage failures are printed and returned as
// ErrReported.
func recordMood(ctx context.Context, out io.Writer, req logRequest, cfg *config.Config) error {
	path, isDefault, err := effectiveDBPath(req.DBPath, cfg)
	if err != nil {
		return err
	}

	ts := now().Unix()
	if req.Datetime != "" {
		ts, err = mood.ParseDatetime(req.Datetime)
		if err != nil {
			return err
		}
	}

	if isDefault {
		if err := paths.EnsureParentDir(path); err != nil {
			return err
		}
	}
	debugf("using database %s", path)

	entry := mood.NewEntry(ts, req.Value, req.Message)
	if req.MessageSet && entry.Message == nil {
		empty := ""
		entry.Message = &empty
	}
	rows, err := persist(ctx, path, &entry)
	if err != nil {
		fmt.Fprintln(out, mood.FormatFailure(err))
		return fmt.Errorf("%w: %v", ErrReported, err)
	}
	debugf("stored entry id=%d timestamp=%d", entry.ID, entry.Timestamp)

	fmt.Fprintln(out, mood.FormatResult(rows, entry.Value))
	return nil
}

func persist(ctx context.Context, path string, entry *mood.Entry) (int64, error) {
	s, err := store.Open(path, store.WithLogger(logger))
	if err != nil {
		return 0, err
	}
	defer s.Close()

	if err := s.EnsureSchema(ctx); err != nil {
		return 0, err
	}
	return s.Insert(ctx, entry)
}
