package journal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"circularmenu/internal/menu"
)

// Journal bundles the connection, the repository and a running recorder.
type Journal struct {
	Client   *Client
	Repo     *Repo
	Recorder *Recorder

	detach func()
}

// Open connects to dsn, migrates the schema, attaches a recorder to state
// and starts it. clientOpts tune the database; opts tune the recorder.
func Open(ctx context.Context, dsn string, state *menu.State, clientOpts []ClientOption, opts ...RecorderOption) (*Journal, error) {
	client, err := NewClient(dsn, append([]ClientOption{WithTimeout(5 * time.Second)}, clientOpts...)...)
	if err != nil {
		return nil, err
	}

	repo := NewRepo(client.DB())
	if err := repo.Migrate(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	rec, err := NewRecorder(repo, opts...)
	if err != nil {
		client.Close()
		return nil, err
	}
	if err := rec.Start(ctx); err != nil {
		client.Close()
		return nil, err
	}

	j := &Journal{Client: client, Repo: repo, Recorder: rec}
	if state != nil {
		j.detach = rec.Attach(state)
	}
	slog.Info("journal opened", "dsn", dsn)
	return j, nil
}

// Close detaches from the state, flushes queued entries and closes the
// database.
func (j *Journal) Close() error {
	if j.detach != nil {
		j.detach()
		j.detach = nil
	}
	j.Recorder.Stop()
	st := j.Recorder.Stats()
	slog.Info("journal closed", "written", st.Written, "dropped", st.Dropped, "failed", st.Failed)
	return j.Client.Close()
}
