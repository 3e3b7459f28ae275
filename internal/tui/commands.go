// ABOUTME: Background commands that talk to the session store and the API
// ABOUTME: Each captures the screen generation and context when created

package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/bootstrap"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/catalog"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/route"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/authform"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/dashboard"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/editform"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/resource"
	"github.com/osamaqaseem39/strikersgear-dashboard/internal/tui/stock"
	"golang.org/x/sync/errgroup"
)

// initSession reads the persisted credential, then retries path
func (a *App) initSession(path string) tea.Cmd {
	gen, store := a.gen, a.session
	return func() tea.Msg {
		store.Initialize()
		return sessionReadyMsg{gen: gen, path: path}
	}
}

// checkAdmin asks the API whether the admin account exists
func (a *App) checkAdmin() tea.Cmd {
	gen, ctx, auth := a.gen, a.ctx, a.catalog.Auth
	return func() tea.Msg {
		status, err := bootstrap.Check(ctx, auth)
		return adminStatusMsg{gen: gen, status: status, err: err}
	}
}

// submitAuth logs in or creates the admin from a submitted form
func (a *App) submitAuth(msg authform.SubmittedMsg) tea.Cmd {
	gen, ctx, auth, store := a.gen, a.ctx, a.catalog.Auth, a.session
	return func() tea.Msg {
		var err error
		if msg.Mode == authform.ModeCreateAdmin {
			err = bootstrap.Register(ctx, auth, store, msg.Password, msg.Confirm)
		} else {
			err = bootstrap.Login(ctx, auth, store, msg.Password)
		}
		return authDoneMsg{gen: gen, err: err}
	}
}

// loadOverview fetches every collection the dashboard summarizes
func (a *App) loadOverview() tea.Cmd {
	gen, ctx, cat := a.gen, a.ctx, a.catalog
	return func() tea.Msg {
		var d dashboard.Data
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			d.Products, err = cat.Products.List(gctx, catalog.ProductFilter{})
			return err
		})
		g.Go(func() (err error) {
			d.Stock, err = cat.Stock.List(gctx, "")
			return err
		})
		g.Go(func() (err error) {
			d.Orders, err = cat.Orders.List(gctx, "")
			return err
		})
		g.Go(func() (err error) {
			d.Brands, err = cat.Brands.List(gctx, false)
			return err
		})
		g.Go(func() (err error) {
			d.Categories, err = cat.Categories.List(gctx, false)
			return err
		})
		g.Go(func() (err error) {
			d.Banners, err = cat.Banners.List(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return overviewLoadedMsg{gen: gen, err: err}
		}
		return overviewLoadedMsg{gen: gen, overview: dashboard.Summarize(d)}
	}
}

// loadListing fetches the table rows for a resource screen
func (a *App) loadListing(path string) tea.Cmd {
	gen, ctx, cat := a.gen, a.ctx, a.catalog
	return func() tea.Msg {
		if path == route.Orders {
			orders, err := cat.Orders.List(ctx, "")
			if err != nil {
				return listingLoadedMsg{gen: gen, err: err}
			}
			return listingLoadedMsg{gen: gen, listing: resource.Orders(orders), orders: orders}
		}
		listing, err := fetchListing(ctx, cat, path)
		return listingLoadedMsg{gen: gen, listing: listing, err: err}
	}
}

func fetchListing(ctx context.Context, cat *catalog.Catalog, path string) (resource.Listing, error) {
	switch path {
	case route.Products:
		items, err := cat.Products.List(ctx, catalog.ProductFilter{})
		return resource.Products(items), err
	case route.Categories:
		items, err := cat.Categories.List(ctx, false)
		return resource.Categories(items), err
	case route.Brands:
		items, err := cat.Brands.List(ctx, false)
		return resource.Brands(items), err
	case route.Sizes:
		items, err := cat.Sizes.List(ctx, "")
		return resource.Sizes(items), err
	case route.Banners:
		items, err := cat.Banners.List(ctx)
		return resource.Banners(items), err
	}
	return resource.Listing{Path: path}, fmt.Errorf("no listing for %s", path)
}

// refreshStock reloads stock rows together with the product and size names
// needed to label bare references
func (a *App) refreshStock() tea.Cmd {
	gen, ctx, cat := a.gen, a.ctx, a.catalog
	ticket := a.board.BeginRefresh()
	return func() tea.Msg {
		var (
			rows     []catalog.Stock
			products []catalog.Product
			sizes    []catalog.Size
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			rows, err = cat.Stock.List(gctx, "")
			return err
		})
		g.Go(func() (err error) {
			products, err = cat.Products.List(gctx, catalog.ProductFilter{})
			return err
		})
		g.Go(func() (err error) {
			sizes, err = cat.Sizes.List(gctx, "")
			return err
		})
		if err := g.Wait(); err != nil {
			return stockLoadedMsg{gen: gen, ticket: ticket, err: err}
		}
		return stockLoadedMsg{gen: gen, ticket: ticket, rows: stock.Resolve(rows, products, sizes)}
	}
}

// adjustStock changes the selected row's quantity by delta
func (a *App) adjustStock(delta int) tea.Cmd {
	row, ok := a.selectedStock()
	if !ok {
		return nil
	}
	qty := row.Quantity + delta
	if err := catalog.ValidateQuantity(qty); err != nil {
		a.err = err
		return nil
	}

	gen, ctx, cat, key := a.gen, a.ctx, a.catalog, row.Key()
	return func() tea.Msg {
		if _, err := cat.Stock.SetQuantity(ctx, key.ProductID, key.SizeID, qty); err != nil {
			return stockWrittenMsg{gen: gen, key: key, err: err}
		}
		return stockWrittenMsg{gen: gen, key: key, qty: qty}
	}
}

// setOrderStatus moves the selected order to status
func (a *App) setOrderStatus(status string) tea.Cmd {
	id := a.table.SelectedID()
	if id == "" {
		return nil
	}
	gen, ctx, cat := a.gen, a.ctx, a.catalog
	short := catalog.Order{ID: id}.ShortID()
	return func() tea.Msg {
		_, err := cat.Orders.SetStatus(ctx, id, status)
		return actionDoneMsg{gen: gen, notice: fmt.Sprintf("Order %s marked %s", short, status), err: err}
	}
}

// deleteSelected removes the document under the cursor
func (a *App) deleteSelected() tea.Cmd {
	id := a.table.SelectedID()
	if id == "" {
		return nil
	}
	gen, ctx, cat, path := a.gen, a.ctx, a.catalog, a.path
	return func() tea.Msg {
		err := deleteDocument(ctx, cat, path, id)
		return actionDoneMsg{gen: gen, notice: "Deleted", err: err}
	}
}

func deleteDocument(ctx context.Context, cat *catalog.Catalog, path, id string) error {
	switch path {
	case route.Products:
		return cat.Products.Delete(ctx, id)
	case route.Stock:
		return cat.Stock.Delete(ctx, id)
	case route.Orders:
		return cat.Orders.Delete(ctx, id)
	case route.Categories:
		return cat.Categories.Delete(ctx, id)
	case route.Brands:
		return cat.Brands.Delete(ctx, id)
	case route.Sizes:
		return cat.Sizes.Delete(ctx, id)
	case route.Banners:
		return cat.Banners.Delete(ctx, id)
	}
	return fmt.Errorf("cannot delete from %s", path)
}

// openEditor loads the add form, or the edit form when id is set, together
// with the choices for its reference fields. Screens without a form ignore it.
func (a *App) openEditor(id string) tea.Cmd {
	editor, ok := a.catalog.Editor(strings.TrimPrefix(a.path, "/"))
	if !ok {
		return nil
	}

	a.leave()
	a.screen = ScreenLoading
	a.loadingText = "Loading form..."

	gen, ctx, cat := a.gen, a.ctx, a.catalog
	return func() tea.Msg {
		msg := editorLoadedMsg{gen: gen, editor: editor, id: id, options: map[string][]catalog.Option{}}
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		if id != "" {
			g.Go(func() (err error) {
				msg.current, err = editor.Current(gctx, id)
				return err
			})
		}
		for _, f := range editor.Fields() {
			if f.Kind != catalog.KindRef || (id != "" && f.CreateOnly) {
				continue
			}
			g.Go(func() error {
				opts, err := cat.RefOptions(gctx, f.RefTo)
				if err != nil {
					return err
				}
				mu.Lock()
				msg.options[f.RefTo] = opts
				mu.Unlock()
				return nil
			})
		}
		msg.err = g.Wait()
		return msg
	}
}

// saveDocument creates or updates the document a submitted form describes
func (a *App) saveDocument(msg editform.SubmittedMsg) tea.Cmd {
	editor, ok := a.catalog.Editor(msg.Resource)
	if !ok {
		return nil
	}
	gen, ctx := a.gen, a.ctx
	return func() tea.Msg {
		if msg.ID == "" {
			saved, err := editor.Create(ctx, msg.Values)
			return savedMsg{gen: gen, notice: "Created " + saved.ID, err: err}
		}
		_, err := editor.Update(ctx, msg.ID, msg.Values)
		return savedMsg{gen: gen, notice: "Saved changes", err: err}
	}
}
