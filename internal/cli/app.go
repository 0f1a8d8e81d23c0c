package cli

import (
	"context"
	"log/slog"

	"github.com/ovchar/storenav/internal/catalog"
	"github.com/ovchar/storenav/internal/notify"
	"github.com/ovchar/storenav/internal/store"
)

// app bundles the collaborators a command needs: the opened preference
// store, the loaded catalog, and the notification surface. Collaborators
// are chosen here, once, and injected down - commands never branch on
// environment.
type app struct {
	store    *store.Store
	catalog  *catalog.Catalog
	notifier notify.Notifier
}

// openApp opens the preference store and loads the catalog into memory.
// Callers must close the returned app.
func openApp(ctx context.Context, opts *RootOptions) (*app, error) {
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	products, sections, err := store.LoadCatalog(ctx, st)
	if err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load catalog", err)
	}

	cat := catalog.New(catalog.UUIDv7Source{})
	cat.Load(products, sections)
	slog.Debug("catalog loaded", "products", len(products), "sections", len(sections))

	return &app{
		store:    st,
		catalog:  cat,
		notifier: notify.SlogNotifier{},
	}, nil
}

// save persists the in-memory catalog. Write failures surface as a
// notification; in-memory state is not rolled back.
func (a *app) save(ctx context.Context) error {
	err := store.SaveCatalog(ctx, a.store, a.catalog.Products(), a.catalog.Sections())
	if err != nil {
		a.notifier.Show("Failed to save data: "+err.Error(), notify.DurationLong)
		return WrapExitError(ExitCommandError, "failed to save catalog", err)
	}
	a.notifier.Show("All data saved", notify.DurationShort)
	return nil
}

func (a *app) close() {
	a.store.Close()
}
